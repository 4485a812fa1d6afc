package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/spectrum-api/internal/config"
	"github.com/phrazzld/spectrum-api/internal/domain"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"github.com/phrazzld/spectrum-api/internal/redact"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// prompts renders the prompt for each request
	prompts *generation.PromptBuilder

	// models issues GenerateContent calls
	models ContentGenerator
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing model name and sampling settings
//   - prompts: The prompt builder used for every request
//   - models: The Gemini model service, usually client.Models
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if a dependency is missing
func NewGeminiGenerator(
	logger *slog.Logger,
	cfg config.LLMConfig,
	prompts *generation.PromptBuilder,
	models ContentGenerator,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if prompts == nil {
		return nil, ErrNilPromptBuilder
	}

	if models == nil {
		return nil, ErrNilModels
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &GeminiGenerator{
		logger:  logger,
		config:  cfg,
		prompts: prompts,
		models:  models,
	}, nil
}

// GenerateSpectrums asks Gemini for req.Count pairs about req.Idea and
// returns exactly that many. The model is called once; there are no retries.
func (g *GeminiGenerator) GenerateSpectrums(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.SpectrumPair, error) {
	prompt, err := g.prompts.Build(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build prompt: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.DebugContext(ctx, "Prompt generated successfully",
		"idea_length", len(req.Idea),
		"count", req.Count,
		"prompt_length", len(prompt))

	if g.config.RequestTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.config.RequestTimeoutSeconds)*time.Second)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt), g.generateConfig())
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.config.ModelName,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", redact.Error(err))
		return nil, fmt.Errorf("%w: gemini call: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.config.ModelName,
		"duration_ms", time.Since(start).Milliseconds())

	raw, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Unusable Gemini response", "error", err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "Raw model output",
		"raw_length", len(raw),
		"raw", redact.String(raw))

	pairs, err := generation.Normalize(raw, req.Count)
	if err != nil {
		g.logger.WarnContext(ctx, "Model output failed normalization",
			"raw_length", len(raw),
			"count", req.Count,
			"error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "Successfully parsed Gemini response",
		"pair_count", len(pairs))

	return pairs, nil
}

// generateConfig builds the per-call generation settings.
func (g *GeminiGenerator) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.config.Temperature)),
		MaxOutputTokens: int32(g.config.MaxOutputTokens),
		CandidateCount:  1,
	}

	if g.config.JSONResponse {
		cfg.ResponseMIMEType = jsonMIMEType
	}

	return cfg
}

// extractText returns the concatenated text of the single candidate.
//
// Anything other than exactly one candidate with text content is a failure;
// the generator does not pick among alternatives. Thought parts are skipped.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	switch n := len(resp.Candidates); {
	case n == 0:
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	case n > 1:
		return "", fmt.Errorf("%w: expected one candidate, got %d", generation.ErrInvalidResponse, n)
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	// Safety blocks usually arrive without content.
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		b.WriteString(part.Text)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response has no text parts (finish reason %q)",
			generation.ErrInvalidResponse, candidate.FinishReason)
	}

	return b.String(), nil
}
