// Package main implements the entry point for the Spectrum API server,
// which turns a theme into opposite-end word pairs for a Wavelength-style
// guessing game using Gemini.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/spectrum-api/internal/config"
	"github.com/phrazzld/spectrum-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spectrum-api: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, wires dependencies and serves until SIGINT or
// SIGTERM.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"custom_prompt", cfg.LLM.PromptTemplatePath != "")

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		return err
	}

	return app.Run(ctx)
}
