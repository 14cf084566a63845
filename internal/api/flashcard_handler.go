package api

import (
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/service"
)

// GenerateFlashcardsRequest represents the request body for generating flashcards
type GenerateFlashcardsRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// FlashcardResponse represents a single flashcard in the response
type FlashcardResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GenerateFlashcardsResponse represents the response data for a generation request
type GenerateFlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
}

// FlashcardHandler handles flashcard generation HTTP requests
type FlashcardHandler struct {
	flashcardService service.FlashcardService
	logger           *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(flashcardService service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		flashcardService: flashcardService,
		logger:           logger.With("component", "flashcard_handler"),
	}
}

// GenerateFlashcards handles POST /api/flashcards requests
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic cannot be empty")
		return
	}

	cards, err := h.flashcardService.Generate(r.Context(), req.Topic)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, flashcardsToResponse(cards))
}

// flashcardsToResponse converts domain flashcards to the response shape,
// preserving their order.
func flashcardsToResponse(cards []domain.Flashcard) GenerateFlashcardsResponse {
	response := GenerateFlashcardsResponse{
		Flashcards: make([]FlashcardResponse, 0, len(cards)),
	}
	for _, card := range cards {
		response.Flashcards = append(response.Flashcards, FlashcardResponse{
			Term:       card.Term,
			Definition: card.Definition,
		})
	}
	return response
}
