package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the upstream model call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate spectrums")

	// ErrInvalidResponse is returned when the LLM response cannot be used.
	// Every normalization error below is also wrapped with it.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrInvalidCount is returned when Normalize is asked for fewer than one pair
	ErrInvalidCount = errors.New("requested pair count must be positive")
)

// Normalization failures. They are distinguished for diagnostics and tests
// only; the API reports all of them the same way.
var (
	ErrEmptyResponse     = errors.New("model response is empty")
	ErrMalformedJSON     = errors.New("model response is not valid JSON")
	ErrInvalidShape      = errors.New("model response is not an array of left/right string pairs")
	ErrInsufficientPairs = errors.New("model response has fewer pairs than requested")
)
