package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
	"github.com/polkiloo/resi/internal/domain/repository"
)

// ReceiptUseCase implements receipt operations scoped to one owner.
type ReceiptUseCase struct {
	receipts repository.ReceiptRepository
}

// NewReceiptUseCase constructs ReceiptUseCase.
func NewReceiptUseCase(receipts repository.ReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{receipts: receipts}
}

// List returns the owner's receipts, newest first.
func (u *ReceiptUseCase) List(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]model.Receipt, error) {
	return u.receipts.ListByUser(ctx, userID, filter)
}

// Create stores a receipt for userID. Tracking numbers are unique across all users.
func (u *ReceiptUseCase) Create(ctx context.Context, userID int64, input model.ReceiptInput) (*model.Receipt, error) {
	input.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
	if input.TrackingNumber == "" {
		return nil, domainErrors.ErrMissingTrackingNumber
	}
	input.ItemName = normalize(input.ItemName)
	input.StoreName = normalize(input.StoreName)
	input.Courier = normalize(input.Courier)
	return u.receipts.Create(ctx, userID, input)
}

// Update edits non-key fields of a receipt owned by userID. Blank fields keep
// their stored value. ErrNotFound covers both missing and foreign receipts.
func (u *ReceiptUseCase) Update(ctx context.Context, userID, id int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	patch.ItemName = normalize(patch.ItemName)
	patch.StoreName = normalize(patch.StoreName)
	patch.Courier = normalize(patch.Courier)
	return u.receipts.Update(ctx, userID, id, patch)
}

// Delete removes a receipt owned by userID. Missing receipts are not an error.
func (u *ReceiptUseCase) Delete(ctx context.Context, userID, id int64) error {
	return u.receipts.Delete(ctx, userID, id)
}

// Export renders the filtered listing as CSV.
func (u *ReceiptUseCase) Export(ctx context.Context, userID int64, filter model.ReceiptFilter) ([]byte, error) {
	receipts, err := u.receipts.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return encodeCSV(receipts), nil
}

// Import inserts every data line of a CSV file for userID, one statement per
// line. Duplicate tracking numbers are skipped; any other failure stops the
// import and rows inserted so far are kept.
func (u *ReceiptUseCase) Import(ctx context.Context, userID int64, data []byte) (*model.ImportResult, error) {
	result := &model.ImportResult{}
	for _, rec := range decodeCSV(data) {
		if rec.Fields[0] == "" {
			continue
		}
		date, err := model.ParseDate(rec.Fields[4])
		if err != nil {
			return result, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		_, err = u.receipts.Create(ctx, userID, model.ReceiptInput{
			TrackingNumber: rec.Fields[0],
			ItemName:       model.OptionalString(rec.Fields[1]),
			StoreName:      model.OptionalString(rec.Fields[2]),
			Courier:        model.OptionalString(rec.Fields[3]),
			Date:           date,
		})
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			result.Skipped++
		default:
			return result, fmt.Errorf("line %d: %w", rec.Line, err)
		}
	}
	return result, nil
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	return model.OptionalString(*s)
}
