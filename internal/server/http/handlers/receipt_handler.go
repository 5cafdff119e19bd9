package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
	"github.com/polkiloo/resi/internal/server/http/dto"
)

const (
	exportFilename = "resi_export.csv"

	msgUnauthorized = "Unauthorised: user tidak ditemukan"
	msgNotFound     = "Resi tidak ditemukan atau bukan milik akun ini"
	msgFileTooLarge = "Ukuran file CSV melebihi batas"
)

// ReceiptHandler manages receipt endpoints. Every operation is scoped to the
// authenticated user; the owner never comes from the request body.
type ReceiptHandler struct {
	facade ReceiptFacade
	logger *slog.Logger
}

// NewReceiptHandler constructs ReceiptHandler.
func NewReceiptHandler(facade ReceiptFacade, logger *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{facade: facade, logger: logger}
}

// List handles GET /api/resi.
func (h *ReceiptHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	receipts, err := h.facade.Receipts(c.Request.Context(), userID, filter)
	if err != nil {
		internalError(c, h.logger, "list receipts", err)
		return
	}

	response := make([]dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, toReceiptResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/resi.
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Body request tidak valid")
		return
	}
	date, ok := bindDate(c, req.Tanggal)
	if !ok {
		return
	}

	receipt, err := h.facade.CreateReceipt(c.Request.Context(), userID, model.ReceiptInput{
		TrackingNumber: req.NomorResi,
		ItemName:       req.NamaBarang,
		StoreName:      req.NamaToko,
		Courier:        req.JasaKirim,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingTrackingNumber):
			respondMessage(c, http.StatusBadRequest, "nomor_resi wajib diisi")
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondMessage(c, http.StatusConflict, "Nomor resi sudah pernah disimpan")
		default:
			internalError(c, h.logger, "create receipt", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ReceiptEnvelope{Message: "Resi berhasil disimpan", Data: toReceiptResponse(*receipt)})
}

// Update handles PUT /api/resi/:id.
func (h *ReceiptHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusNotFound, msgNotFound)
		return
	}
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Body request tidak valid")
		return
	}
	date, ok := bindDate(c, req.Tanggal)
	if !ok {
		return
	}

	receipt, err := h.facade.UpdateReceipt(c.Request.Context(), userID, id, model.ReceiptPatch{
		ItemName:  req.NamaBarang,
		StoreName: req.NamaToko,
		Courier:   req.JasaKirim,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, msgNotFound)
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, h.logger, "update receipt", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptEnvelope{Message: "Resi berhasil diupdate", Data: toReceiptResponse(*receipt)})
}

// Delete handles DELETE /api/resi/:id. Deleting a missing receipt succeeds.
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		if err := h.facade.DeleteReceipt(c.Request.Context(), userID, id); err != nil {
			internalError(c, h.logger, "delete receipt", err)
			return
		}
	}
	respondMessage(c, http.StatusOK, "Resi berhasil dihapus")
}

// Export handles GET /api/resi/export.
func (h *ReceiptHandler) Export(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.facade.ExportReceipts(c.Request.Context(), userID, filter)
	if err != nil {
		internalError(c, h.logger, "export receipts", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Import handles POST /api/resi/import with a multipart "file" field.
func (h *ReceiptHandler) Import(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondMessage(c, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		respondMessage(c, http.StatusBadRequest, "File CSV tidak ditemukan")
		return
	}
	file, err := header.Open()
	if err != nil {
		internalError(c, h.logger, "open import file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		internalError(c, h.logger, "read import file", err)
		return
	}

	result, err := h.facade.ImportReceipts(c.Request.Context(), userID, data)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			respondMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, h.logger, "import receipts", err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{Message: "Import selesai", Inserted: result.Inserted, Skipped: result.Skipped})
}

func requireUser(c *gin.Context) (int64, bool) {
	userID := CurrentUserID(c)
	if userID <= 0 {
		respondMessage(c, http.StatusUnauthorized, msgUnauthorized)
		return 0, false
	}
	return userID, true
}

func bindFilter(c *gin.Context) (model.ReceiptFilter, bool) {
	filter, err := model.ParseReceiptFilter(c.Query("start"), c.Query("end"), c.Query("jasa"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return model.ReceiptFilter{}, false
	}
	return filter, true
}

func bindDate(c *gin.Context, value *string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	date, err := model.ParseDate(*value)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return date, true
}

func toReceiptResponse(r model.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:         r.ID,
		NomorResi:  r.TrackingNumber,
		NamaBarang: r.ItemName,
		NamaToko:   r.StoreName,
		JasaKirim:  r.Courier,
		Tanggal:    model.FormatDate(r.Date),
		UserID:     r.UserID,
	}
}
