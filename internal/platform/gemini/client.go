package gemini

import (
	"context"
	"fmt"

	"github.com/phrazzld/spectrum-api/internal/config"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai Models service the generator uses.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

var _ ContentGenerator = (*genai.Models)(nil)

// NewClient creates a Gemini API client from configuration. The caller owns
// the returned client for the lifetime of the process.
func NewClient(ctx context.Context, cfg config.LLMConfig) (*genai.Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return client, nil
}
