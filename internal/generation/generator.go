package generation

import (
	"context"

	"github.com/phrazzld/spectrum-api/internal/domain"
)

// Generator defines the interface for generating spectrum pairs from a theme.
// This interface serves as a boundary between the HTTP layer and external
// AI/LLM services.
type Generator interface {
	// GenerateSpectrums asks the model for req.Count pairs built around
	// req.Idea. On success it returns exactly req.Count pairs. A request is
	// attempted once; errors wrap ErrGenerationFailed, ErrInvalidResponse or
	// ErrContentBlocked.
	GenerateSpectrums(ctx context.Context, req domain.GenerationRequest) ([]domain.SpectrumPair, error)
}
