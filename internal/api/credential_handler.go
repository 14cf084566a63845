package api

import (
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/credential"
)

// ActivateCredentialRequest represents the request body for supplying an API key
type ActivateCredentialRequest struct {
	Key string `json:"key" validate:"required"`
}

// CredentialStatusResponse represents the response data for credential status
type CredentialStatusResponse struct {
	Status string `json:"status"`
}

// CredentialHandler handles credential-related HTTP requests
type CredentialHandler struct {
	gate   *credential.Gate
	logger *slog.Logger
}

// NewCredentialHandler creates a new CredentialHandler
func NewCredentialHandler(gate *credential.Gate, logger *slog.Logger) *CredentialHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialHandler{
		gate:   gate,
		logger: logger.With("component", "credential_handler"),
	}
}

// GetStatus handles GET /api/credential requests
func (h *CredentialHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CredentialStatusResponse{
		Status: string(h.gate.Status()),
	})
}

// Activate handles PUT /api/credential requests
func (h *CredentialHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req ActivateCredentialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "API key cannot be empty")
		return
	}

	if err := h.gate.Activate(r.Context(), req.Key); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/credential requests
func (h *CredentialHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.gate.Clear()
	w.WriteHeader(http.StatusNoContent)
}
