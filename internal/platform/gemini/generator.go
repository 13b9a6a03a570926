package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/cloze-api/internal/config"
	"github.com/phrazzld/cloze-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the generateContent calls
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	// temperature is the sampling temperature sent with every call
	temperature float32

	// timeout bounds a single call
	timeout time.Duration
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and timeout
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if err := validateConfig(logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newWithModels(logger, cfg, client.Models), nil
}

func newWithModels(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{
		logger:      logger,
		models:      models,
		model:       cfg.ModelName,
		temperature: float32(cfg.Temperature),
		timeout:     time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}
}

func validateConfig(logger *slog.Logger, cfg config.LLMConfig) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}
	if cfg.Temperature < 0 {
		return fmt.Errorf("%w: temperature cannot be negative", generation.ErrInvalidConfig)
	}
	return nil
}

// GenerateText implements generation.Generator.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	temperature := g.temperature
	resp, err := g.models.GenerateContent(callCtx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: &temperature})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(callCtx.Err(), context.Canceled) {
			g.logger.DebugContext(ctx, "Gemini API call canceled", "error", err)
			return "", fmt.Errorf("%w: gemini call canceled: %v", context.Canceled, err)
		}
		g.logger.ErrorContext(ctx, "Gemini API call error", "error", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", generation.ErrModelTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", generation.ErrModelUnavailable, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned unusable response", "error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.model,
		"response_length", len(text))
	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case len(resp.Candidates) == 0 || resp.Candidates[0] == nil:
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	case resp.Candidates[0].Content == nil:
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// Compile-time check that GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)
