package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/cloze-api/internal/config"
	"github.com/phrazzld/cloze-api/internal/generation"
	"github.com/phrazzld/cloze-api/internal/platform/gemini"
	"github.com/phrazzld/cloze-api/internal/platform/ollama"
	"github.com/phrazzld/cloze-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// generator is the concurrency-limited model client
	generator    generation.Generator
	clozeService service.ClozeService
}

// newApplication creates a new application instance, building the model
// client selected by cfg.LLM.Provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := newGenerator(ctx, cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the service layer around an existing
// model client. The client is wrapped in a concurrency limiter.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	limited, err := generation.NewLimitedGenerator(
		generator,
		cfg.LLM.MaxConcurrentRequests,
		generation.WithTimeout(time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation limiter: %w", err)
	}

	clozeService, err := service.NewClozeService(limited, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloze service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"max_concurrent_requests", cfg.LLM.MaxConcurrentRequests)
	return &application{
		config:       cfg,
		logger:       logger,
		generator:    limited,
		clozeService: clozeService,
	}, nil
}

// newGenerator builds the model client for the configured provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		g, err := ollama.NewOllamaGenerator(logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderGemini:
		g, err := gemini.NewGeminiGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
