package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validation errors for SpectrumPair. Both wrap ErrValidation.
var (
	ErrEmptyLeft  = fmt.Errorf("%w: spectrum left side cannot be empty", ErrValidation)
	ErrEmptyRight = fmt.Errorf("%w: spectrum right side cannot be empty", ErrValidation)
)

// SpectrumPair is one dial of the guessing game: two opposing short phrases
// marking the ends of a conceptual spectrum. Values are immutable once built.
type SpectrumPair struct {
	left  string
	right string
}

// NewSpectrumPair trims both sides and returns a pair.
// Returns an error if either side is empty after trimming.
func NewSpectrumPair(left, right string) (SpectrumPair, error) {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	if left == "" {
		return SpectrumPair{}, ErrEmptyLeft
	}
	if right == "" {
		return SpectrumPair{}, ErrEmptyRight
	}

	return SpectrumPair{left: left, right: right}, nil
}

// Left returns the left end of the spectrum.
func (p SpectrumPair) Left() string { return p.left }

// Right returns the right end of the spectrum.
func (p SpectrumPair) Right() string { return p.right }

// String renders the pair as "left <-> right".
func (p SpectrumPair) String() string {
	return p.left + " <-> " + p.right
}

// MarshalJSON encodes the pair as a two-element array: ["left","right"].
func (p SpectrumPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.left, p.right})
}

// UnmarshalJSON decodes a two-element array and applies the same validation
// as NewSpectrumPair.
func (p *SpectrumPair) UnmarshalJSON(data []byte) error {
	var sides [2]string
	if err := json.Unmarshal(data, &sides); err != nil {
		return fmt.Errorf("%w: spectrum pair must be a [left, right] array: %v", ErrInvalidFormat, err)
	}

	pair, err := NewSpectrumPair(sides[0], sides[1])
	if err != nil {
		return err
	}

	*p = pair
	return nil
}
