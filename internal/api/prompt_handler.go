package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/cloze-api/internal/api/shared"
	"github.com/phrazzld/cloze-api/internal/platform/logger"
	"github.com/phrazzld/cloze-api/internal/service"
)

// PromptHandler handles cloze sentence requests
type PromptHandler struct {
	clozeService service.ClozeService
	logger       *slog.Logger
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(clozeService service.ClozeService, logger *slog.Logger) *PromptHandler {
	if clozeService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("clozeService cannot be nil for PromptHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PromptHandler")
	}

	return &PromptHandler{
		clozeService: clozeService,
		logger:       logger.With(slog.String("component", "prompt_handler")),
	}
}

// CreatePrompt handles POST /prompt/ requests.
// It asks the language model for a sentence using the card's front side with
// that word replaced by an underscore and returns the model's text verbatim.
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PromptRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		message := "Invalid request format"
		if errors.Is(err, shared.ErrEmptyBody) {
			message = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	text, err := h.clozeService.CreateSentence(r.Context(), req.ToFlashcard())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create sentence"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("created cloze sentence",
		slog.Int("front_side_length", len(req.FrontSide)),
		slog.Int("response_length", len(text)))
	shared.RespondWithJSON(w, r, http.StatusOK, PromptResponse{Response: text})
}
