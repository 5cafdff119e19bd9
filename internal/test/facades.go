package test

import (
	"context"
	"time"

	"github.com/polkiloo/resi/internal/domain/model"
)

// ReceiptFacadeStub provides controllable behaviour for receipt endpoints.
type ReceiptFacadeStub struct {
	ListFn   func(context.Context, int64, model.ReceiptFilter) ([]model.Receipt, error)
	CreateFn func(context.Context, int64, model.ReceiptInput) (*model.Receipt, error)
	UpdateFn func(context.Context, int64, int64, model.ReceiptPatch) (*model.Receipt, error)
	DeleteFn func(context.Context, int64, int64) error
	ExportFn func(context.Context, int64, model.ReceiptFilter) ([]byte, error)
	ImportFn func(context.Context, int64, []byte) (*model.ImportResult, error)
}

// Receipts delegates to ListFn or returns a single receipt.
func (s ReceiptFacadeStub) Receipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, filter)
	}
	return []model.Receipt{{ID: 1, TrackingNumber: "R1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), UserID: userID}}, nil
}

// CreateReceipt echoes the input as a stored receipt by default.
func (s ReceiptFacadeStub) CreateReceipt(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, input)
	}
	r := &model.Receipt{
		ID:             1,
		TrackingNumber: input.TrackingNumber,
		ItemName:       input.ItemName,
		StoreName:      input.StoreName,
		Courier:        input.Courier,
		Date:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:         userID,
	}
	if input.Date != nil {
		r.Date = *input.Date
	}
	return r, nil
}

// UpdateReceipt applies the patch to a default receipt.
func (s ReceiptFacadeStub) UpdateReceipt(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, patch)
	}
	r := &model.Receipt{ID: id, TrackingNumber: "R1", ItemName: patch.ItemName, StoreName: patch.StoreName, Courier: patch.Courier, UserID: userID}
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	return r, nil
}

// DeleteReceipt executes configured handler.
func (s ReceiptFacadeStub) DeleteReceipt(ctx context.Context, userID, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// ExportReceipts returns configured CSV bytes.
func (s ReceiptFacadeStub) ExportReceipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]byte, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, userID, filter)
	}
	return []byte("nomor_resi,nama_barang,nama_toko,jasa_kirim,tanggal\n"), nil
}

// ImportReceipts returns configured import counters.
func (s ReceiptFacadeStub) ImportReceipts(ctx context.Context, userID int64, data []byte) (*model.ImportResult, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, userID, data)
	}
	return &model.ImportResult{}, nil
}
