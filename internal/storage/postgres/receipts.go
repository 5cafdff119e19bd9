package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/resi/internal/domain/model"
)

const receiptColumns = `id, nomor_resi, nama_barang, nama_toko, jasa_kirim, tanggal, user_id`

type receiptRepository struct {
	storage *Storage
}

func scanReceipt(row pgx.Row, r *model.Receipt) error {
	return row.Scan(&r.ID, &r.TrackingNumber, &r.ItemName, &r.StoreName, &r.Courier, &r.Date, &r.UserID)
}

func (r *receiptRepository) Create(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error) {
	const query = `INSERT INTO resi (nomor_resi, nama_barang, nama_toko, jasa_kirim, tanggal, user_id)
                   VALUES ($1, $2, $3, $4, COALESCE($5, CURRENT_DATE), $6)
                   RETURNING ` + receiptColumns
	var receipt model.Receipt
	row := r.storage.pool.QueryRow(ctx, query,
		input.TrackingNumber, input.ItemName, input.StoreName, input.Courier, input.Date, userID)
	if err := scanReceipt(row, &receipt); err != nil {
		return nil, translateError(err)
	}
	return &receipt, nil
}

func (r *receiptRepository) ListByUser(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + receiptColumns + ` FROM resi WHERE user_id=$1`)
	args := []any{userID}

	addCondition := func(cond string, arg any) {
		args = append(args, arg)
		sb.WriteString(" AND " + cond + "$" + strconv.Itoa(len(args)))
	}
	if filter.Start != nil {
		addCondition("tanggal >= ", *filter.Start)
	}
	if filter.End != nil {
		addCondition("tanggal <= ", *filter.End)
	}
	if filter.Courier != "" {
		addCondition("jasa_kirim = ", filter.Courier)
	}
	sb.WriteString(" ORDER BY tanggal DESC, id DESC")

	rows, err := r.storage.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Receipt, 0)
	for rows.Next() {
		var receipt model.Receipt
		if err := scanReceipt(rows, &receipt); err != nil {
			return nil, err
		}
		result = append(result, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *receiptRepository) Update(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	const query = `UPDATE resi
                   SET nama_barang = COALESCE($1, nama_barang),
                       nama_toko = COALESCE($2, nama_toko),
                       jasa_kirim = COALESCE($3, jasa_kirim),
                       tanggal = COALESCE($4, tanggal)
                   WHERE id=$5 AND user_id=$6
                   RETURNING ` + receiptColumns
	var receipt model.Receipt
	row := r.storage.pool.QueryRow(ctx, query, patch.ItemName, patch.StoreName, patch.Courier, patch.Date, id, userID)
	if err := scanReceipt(row, &receipt); err != nil {
		return nil, translateError(err)
	}
	return &receipt, nil
}

func (r *receiptRepository) Delete(ctx context.Context, userID, id int64) error {
	const query = `DELETE FROM resi WHERE id=$1 AND user_id=$2`
	_, err := r.storage.pool.Exec(ctx, query, id, userID)
	return err
}
