// Package main implements the entry point for the cloze API server, which
// asks a chat language model for fill-in-the-blank sentences built around a
// flashcard's front side.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/cloze-api/internal/config"
	"github.com/phrazzld/cloze-api/internal/platform/logger"
)

// main is the entry point for the cloze-api server.
// It loads configuration, sets up logging, wires the model client and the
// HTTP handlers and runs the server until it receives SIGINT or SIGTERM.
func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"llm_model", cfg.LLM.ModelName)
	if cfg.LLM.GeminiAPIKey != "" {
		appLogger.Debug("Gemini configuration", "api_key_present", true)
	}

	return cfg, appLogger, nil
}
