package model

import "time"

// User represents a registered account owning receipts.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
