package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateSpectrumsFn allows test cases to mock the GenerateSpectrums behavior
	GenerateSpectrumsFn func(ctx context.Context, req domain.GenerationRequest) ([]domain.SpectrumPair, error)

	// Default response values, used when GenerateSpectrumsFn is nil.
	// A nil Pairs with a nil Err yields req.Count numbered pairs.
	Pairs []domain.SpectrumPair
	Err   error

	mu    sync.Mutex
	calls []domain.GenerationRequest
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateSpectrums implements the generation.Generator interface
func (m *MockGenerator) GenerateSpectrums(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.SpectrumPair, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.GenerateSpectrumsFn != nil {
		return m.GenerateSpectrumsFn(ctx, req)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Pairs != nil {
		return m.Pairs, nil
	}
	return NumberedPairs(req.Count), nil
}

// Calls returns a copy of every request passed to GenerateSpectrums.
func (m *MockGenerator) Calls() []domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.GenerationRequest(nil), m.calls...)
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// NewMockGeneratorWithPairs creates a MockGenerator that returns pairs.
func NewMockGeneratorWithPairs(pairs []domain.SpectrumPair) *MockGenerator {
	return &MockGenerator{Pairs: pairs}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails simulates an upstream model failure.
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(fmt.Errorf("%w: upstream unavailable", generation.ErrGenerationFailed))
}

// MockGeneratorWithContentBlocked simulates a safety block.
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrContentBlocked)
}

// NumberedPairs returns n pairs of the form ("L0","R0"), ("L1","R1"), ...
func NumberedPairs(n int) []domain.SpectrumPair {
	pairs := make([]domain.SpectrumPair, 0, n)
	for i := 0; i < n; i++ {
		p, err := domain.NewSpectrumPair(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", i))
		if err != nil {
			panic(err)
		}
		pairs = append(pairs, p)
	}
	return pairs
}
