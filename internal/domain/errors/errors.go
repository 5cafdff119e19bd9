package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingCredentials    = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrPasswordTooLong       = fmt.Errorf("%w: password must not exceed 72 bytes", ErrValidation)
	ErrMissingTrackingNumber = fmt.Errorf("%w: nomor_resi is required", ErrValidation)
	ErrInvalidDate           = fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrValidation)
)
