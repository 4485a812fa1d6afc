package domain

import (
	"fmt"
	"strings"
)

// Bounds for the number of pairs a single generation may ask for.
const (
	MinPairCount     = 1
	MaxPairCount     = 100
	DefaultPairCount = 30
)

// Validation errors for GenerationRequest. Both wrap ErrValidation.
var (
	ErrEmptyIdea       = fmt.Errorf("%w: idea cannot be empty", ErrValidation)
	ErrCountOutOfRange = fmt.Errorf("%w: count must be between %d and %d", ErrValidation, MinPairCount, MaxPairCount)
)

// GenerationRequest is a validated request for a batch of spectrum pairs
// built around a single theme.
type GenerationRequest struct {
	Idea  string
	Count int
}

// NewGenerationRequest trims the idea and validates both fields.
// A request that fails here never reaches the model.
func NewGenerationRequest(idea string, count int) (GenerationRequest, error) {
	req := GenerationRequest{
		Idea:  strings.TrimSpace(idea),
		Count: count,
	}

	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	return req, nil
}

// Validate checks the request fields.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Idea) == "" {
		return ErrEmptyIdea
	}

	if r.Count < MinPairCount || r.Count > MaxPairCount {
		return ErrCountOutOfRange
	}

	return nil
}
