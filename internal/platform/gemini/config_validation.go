package gemini

import (
	"fmt"

	"github.com/phrazzld/spectrum-api/internal/config"
	"github.com/phrazzld/spectrum-api/internal/generation"
)

// validateConfig checks the settings the adapter cannot run without. The
// config package validates the same fields at load time; this guards callers
// that build an LLMConfig by hand.
func validateConfig(cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive, got %d",
			generation.ErrInvalidConfig, cfg.MaxOutputTokens)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be within [0, 2], got %g",
			generation.ErrInvalidConfig, cfg.Temperature)
	}

	if cfg.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("%w: request timeout cannot be negative, got %d",
			generation.ErrInvalidConfig, cfg.RequestTimeoutSeconds)
	}

	return nil
}
