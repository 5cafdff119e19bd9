package model

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
)

// DateLayout is the wire format of receipt dates in JSON, query strings and CSV.
const DateLayout = "2006-01-02"

// Receipt is a tracked shipment owned by exactly one user.
type Receipt struct {
	ID             int64
	TrackingNumber string
	ItemName       *string
	StoreName      *string
	Courier        *string
	Date           time.Time
	UserID         int64
}

// ReceiptInput carries the client supplied fields of a new receipt.
// A nil Date means the store assigns the current date.
type ReceiptInput struct {
	TrackingNumber string
	ItemName       *string
	StoreName      *string
	Courier        *string
	Date           *time.Time
}

// ReceiptPatch lists editable fields. Nil fields keep their stored value.
type ReceiptPatch struct {
	ItemName  *string
	StoreName *string
	Courier   *string
	Date      *time.Time
}

// ReceiptFilter narrows receipt listings. Zero values disable a condition.
type ReceiptFilter struct {
	Start   *time.Time
	End     *time.Time
	Courier string
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Inserted int
	Skipped  int
}

// ParseDate parses an optional YYYY-MM-DD value; blank input yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidDate, value)
	}
	return &d, nil
}

// FormatDate renders d using DateLayout.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// OptionalString trims value and maps blank strings to nil.
func OptionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// ParseReceiptFilter builds a filter from raw start, end and courier values.
func ParseReceiptFilter(start, end, courier string) (ReceiptFilter, error) {
	var filter ReceiptFilter
	var err error
	if filter.Start, err = ParseDate(start); err != nil {
		return ReceiptFilter{}, err
	}
	if filter.End, err = ParseDate(end); err != nil {
		return ReceiptFilter{}, err
	}
	filter.Courier = strings.TrimSpace(courier)
	return filter, nil
}
