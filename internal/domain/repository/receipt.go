package repository

import (
	"context"

	"github.com/polkiloo/resi/internal/domain/model"
)

// ReceiptRepository persists receipts. Every method is scoped to the owning user.
type ReceiptRepository interface {
	Create(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error)
	ListByUser(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error)
	Update(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error)
	Delete(ctx context.Context, userID, id int64) error
}
