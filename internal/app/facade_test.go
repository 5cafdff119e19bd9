package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
	pkgAuth "github.com/polkiloo/resi/internal/pkg/auth"
	testhelpers "github.com/polkiloo/resi/internal/test"
	"github.com/polkiloo/resi/internal/usecase"
)

func newFacade() (*ReceiptFacade, *testhelpers.UserRepositoryStub, *testhelpers.ReceiptRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (pkgAuth.Identity, error) {
		return pkgAuth.Identity{UserID: 99, Email: "u@example.com"}, nil
	}}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	receiptRepo := testhelpers.NewReceiptRepositoryStub()
	receiptUC := usecase.NewReceiptUseCase(receiptRepo)

	return NewReceiptFacade(authUC, receiptUC), userRepo, receiptRepo
}

func TestReceiptFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade()
	user, err := facade.Register(context.Background(), "User", "u@example.com", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Email != "u@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	stored, err := users.GetByEmail(context.Background(), "u@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Name != "User" {
		t.Fatalf("unexpected stored name %q", stored.Name)
	}

	_, token, err := facade.Login(context.Background(), "u@example.com", "pass")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, _, err := facade.Login(context.Background(), "u@example.com", "nope"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	identity, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if identity.UserID != 99 {
		t.Fatalf("expected id 99, got %d", identity.UserID)
	}
}

func TestReceiptFacadeReceipts(t *testing.T) {
	facade, _, repo := newFacade()
	ctx := context.Background()

	created, err := facade.CreateReceipt(ctx, 7, model.ReceiptInput{TrackingNumber: "R1"})
	if err != nil || created.UserID != 7 {
		t.Fatalf("unexpected create result: %+v err=%v", created, err)
	}

	listed, err := facade.Receipts(ctx, 7, model.ReceiptFilter{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one receipt, got %v err=%v", listed, err)
	}

	item := "Box"
	updated, err := facade.UpdateReceipt(ctx, 7, created.ID, model.ReceiptPatch{ItemName: &item})
	if err != nil || updated.ItemName == nil || *updated.ItemName != "Box" {
		t.Fatalf("unexpected update result: %+v err=%v", updated, err)
	}

	csv, err := facade.ExportReceipts(ctx, 7, model.ReceiptFilter{})
	if err != nil || len(csv) == 0 {
		t.Fatalf("unexpected export result: %q err=%v", csv, err)
	}

	result, err := facade.ImportReceipts(ctx, 8, csv)
	if err != nil {
		t.Fatalf("import returned error: %v", err)
	}
	if result.Inserted != 0 || result.Skipped != 1 {
		t.Fatalf("unexpected import result %+v", result)
	}

	if err := facade.DeleteReceipt(ctx, 7, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected receipt to be deleted")
	}
}
