package api

import (
	"github.com/phrazzld/spectrum-api/internal/domain"
)

// GenerateSpectrumsRequest defines the payload for the generation endpoint.
// Count is optional and defaults to domain.DefaultPairCount.
type GenerateSpectrumsRequest struct {
	Idea  string `json:"idea" validate:"required"`
	Count *int   `json:"count,omitempty" validate:"omitnil,gte=1,lte=100"`
}

// GenerateSpectrumsResponse is the successful response body. Each pair
// serializes as a two-element array.
type GenerateSpectrumsResponse struct {
	Spectrums []domain.SpectrumPair `json:"spectrums"`
}
