package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/spectrum-api/internal/config"
	"github.com/phrazzld/spectrum-api/internal/generation"
	"github.com/phrazzld/spectrum-api/internal/platform/gemini"
)

// application holds the shared dependencies of the server process.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates the Gemini client once and injects it, together
// with the prompt template, into the generator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	prompts, err := generation.LoadPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	client, err := gemini.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	generator, err := gemini.NewGeminiGenerator(
		logger.With("component", "llm_generator"),
		cfg.LLM,
		prompts,
		client.Models,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	return &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
	}, nil
}

// Run serves HTTP on the configured port until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}
