package domain

import "errors"

// Shared error kinds. Specific errors in this package wrap one of these so
// callers can classify them with errors.Is.
var (
	// ErrValidation marks input that breaks a domain rule.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat marks data that cannot be decoded into a domain type.
	ErrInvalidFormat = errors.New("invalid format")
)
