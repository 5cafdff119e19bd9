package handlers

import (
	"context"

	"github.com/polkiloo/resi/internal/domain/model"
	"github.com/polkiloo/resi/internal/server/http/middleware"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

// ReceiptFacade encapsulates receipt operations exposed via HTTP.
type ReceiptFacade interface {
	Receipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error)
	CreateReceipt(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error)
	UpdateReceipt(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error)
	DeleteReceipt(ctx context.Context, userID, id int64) error
	ExportReceipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]byte, error)
	ImportReceipts(ctx context.Context, userID int64, data []byte) (*model.ImportResult, error)
}

// Facade aggregates the full set of operations used across handlers and middleware.
type Facade interface {
	AuthFacade
	ReceiptFacade
	middleware.TokenParser
}
