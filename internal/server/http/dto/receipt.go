package dto

// ReceiptRequest is the body of POST /api/resi and PUT /api/resi/:id.
// NomorResi is ignored on update.
type ReceiptRequest struct {
	NomorResi  string  `json:"nomor_resi"`
	NamaBarang *string `json:"nama_barang"`
	NamaToko   *string `json:"nama_toko"`
	JasaKirim  *string `json:"jasa_kirim"`
	Tanggal    *string `json:"tanggal"`
}

// ReceiptResponse mirrors a stored receipt; missing optional fields are null.
type ReceiptResponse struct {
	ID         int64   `json:"id"`
	NomorResi  string  `json:"nomor_resi"`
	NamaBarang *string `json:"nama_barang"`
	NamaToko   *string `json:"nama_toko"`
	JasaKirim  *string `json:"jasa_kirim"`
	Tanggal    string  `json:"tanggal"`
	UserID     int64   `json:"user_id"`
}

type ReceiptEnvelope struct {
	Message string          `json:"message"`
	Data    ReceiptResponse `json:"data"`
}

type ImportResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}
