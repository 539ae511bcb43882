package domain

import "errors"

var (
	// ErrNotFound covers lookups for records that do not exist or, on the
	// public side, are not active.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput marks admin payloads that fail domain validation.
	ErrInvalidInput = errors.New("invalid input")
)
