package app

import (
	"context"

	"github.com/polkiloo/resi/internal/domain/model"
	pkgAuth "github.com/polkiloo/resi/internal/pkg/auth"
	"github.com/polkiloo/resi/internal/usecase"
)

type ReceiptFacade struct {
	auth     *usecase.AuthUseCase
	receipts *usecase.ReceiptUseCase
}

func NewReceiptFacade(auth *usecase.AuthUseCase, receipts *usecase.ReceiptUseCase) *ReceiptFacade {
	return &ReceiptFacade{auth: auth, receipts: receipts}
}

func (f *ReceiptFacade) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *ReceiptFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *ReceiptFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *ReceiptFacade) Receipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error) {
	return f.receipts.List(ctx, userID, filter)
}

func (f *ReceiptFacade) CreateReceipt(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error) {
	return f.receipts.Create(ctx, userID, input)
}

func (f *ReceiptFacade) UpdateReceipt(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	return f.receipts.Update(ctx, userID, id, patch)
}

func (f *ReceiptFacade) DeleteReceipt(ctx context.Context, userID, id int64) error {
	return f.receipts.Delete(ctx, userID, id)
}

func (f *ReceiptFacade) ExportReceipts(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]byte, error) {
	return f.receipts.Export(ctx, userID, filter)
}

func (f *ReceiptFacade) ImportReceipts(ctx context.Context, userID int64, data []byte) (*model.ImportResult, error) {
	return f.receipts.Import(ctx, userID, data)
}
