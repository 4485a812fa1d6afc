package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
)

// Client-facing messages. These are part of the API contract.
const (
	msgInvalidFormat    = "Invalid request format"
	msgBodyTooLarge     = "Request body too large"
	msgMissingIdea      = "Missing 'idea'"
	msgCountOutOfRange  = "'count' must be between 1 and 100"
	msgInvalidRequest   = "Invalid request"
	msgGenerationFailed = "Failed to generate spectrums"
	msgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation problems are the caller's fault; everything else is ours.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrEmptyIdea):
		return msgMissingIdea

	case errors.Is(err, domain.ErrCountOutOfRange):
		return msgCountOutOfRange

	case errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest

	// Every generation failure collapses into one message; the detail only
	// goes to the logs.
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return msgGenerationFailed

	default:
		return msgUnexpected
	}
}

// translateValidationError turns struct-tag failures on a request DTO into
// the matching domain error so that status and message mapping stay in one
// place.
func translateValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.ErrValidation
	}

	switch fieldErrs[0].Field() {
	case "Idea":
		return domain.ErrEmptyIdea
	case "Count":
		return domain.ErrCountOutOfRange
	default:
		return domain.ErrValidation
	}
}
