package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/cloze-api/internal/config"
	"github.com/phrazzld/cloze-api/internal/generation"
	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

// OllamaGenerator implements generation.Generator using an Ollama chat model.
type OllamaGenerator struct {
	logger      *slog.Logger
	model       llms.Model
	name        string
	temperature float64
	timeout     time.Duration
}

// NewOllamaGenerator creates a generator talking to the Ollama server at
// cfg.OllamaURL using model cfg.ModelName.
func NewOllamaGenerator(logger *slog.Logger, cfg config.LLMConfig) (*OllamaGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}
	if cfg.Temperature < 0 {
		return nil, fmt.Errorf("%w: temperature cannot be negative", generation.ErrInvalidConfig)
	}
	serverURL, err := url.Parse(strings.TrimSuffix(cfg.OllamaURL, "/"))
	if err != nil || serverURL.Scheme == "" || serverURL.Host == "" {
		return nil, fmt.Errorf("%w: invalid ollama url", generation.ErrInvalidConfig)
	}

	llm, err := lcollama.New(
		lcollama.WithServerURL(serverURL.String()),
		lcollama.WithModel(cfg.ModelName),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create ollama client: %v", generation.ErrInvalidConfig, err)
	}

	return &OllamaGenerator{
		logger:      logger,
		model:       llm,
		name:        cfg.ModelName,
		temperature: cfg.Temperature,
		timeout:     time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// GenerateText implements generation.Generator.
func (g *OllamaGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	g.logger.DebugContext(ctx, "calling ollama chat model",
		"model", g.name,
		"prompt_length", len(prompt))

	// langchaingo always sends a temperature, so the configured one is passed
	// explicitly; its zero value would force greedy decoding.
	text, err := llms.GenerateFromSinglePrompt(callCtx, g.model, prompt,
		llms.WithTemperature(g.temperature))
	if err != nil {
		classified := classifyError(callCtx, err)
		level := slog.LevelError
		if errors.Is(classified, context.Canceled) {
			level = slog.LevelDebug
		}
		g.logger.Log(ctx, level, "ollama chat call failed",
			"model", g.name,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return "", classified
	}

	g.logger.InfoContext(ctx, "ollama chat call succeeded",
		"model", g.name,
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(text))

	return text, nil
}

// classifyError maps a langchaingo/transport error onto the generation sentinels.
func classifyError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", generation.ErrModelTimeout, err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: ollama call canceled: %v", context.Canceled, err)
	case errors.Is(err, lcollama.ErrEmptyResponse), strings.Contains(err.Error(), "empty response"):
		return fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	default:
		return fmt.Errorf("%w: %v", generation.ErrModelUnavailable, err)
	}
}

// Compile-time check that OllamaGenerator implements generation.Generator
var _ generation.Generator = (*OllamaGenerator)(nil)
