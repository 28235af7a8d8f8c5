package catalog

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStatus is returned when a status value is outside the known set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrNotFound is returned when no book has the requested ID.
	ErrNotFound = errors.New("book not found")
)
