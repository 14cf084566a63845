package api

import (
	"errors"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/credential"
	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, credential.ErrEmptySecret),
		errors.Is(err, credential.ErrInitFailed),
		errors.Is(err, generation.ErrEmptyTopic):
		return http.StatusBadRequest

	// Credential errors: the gate must be (re-)satisfied first
	case errors.Is(err, credential.ErrNotInitialized),
		errors.Is(err, generation.ErrInvalidCredential):
		return http.StatusUnauthorized

	// A generation request is already in flight
	case errors.Is(err, service.ErrGenerationInProgress):
		return http.StatusConflict

	// Upstream produced nothing usable or failed outright
	case errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrNoValidFlashcards),
		errors.Is(err, generation.ErrUpstreamFailure):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, credential.ErrEmptySecret):
		return "API key cannot be empty"

	case errors.Is(err, credential.ErrInitFailed):
		return "Could not initialize the AI client with the supplied key"

	case errors.Is(err, credential.ErrNotInitialized):
		return "An API key is required before generating flashcards"

	case errors.Is(err, generation.ErrInvalidCredential):
		return "The API key was rejected; please enter a new one"

	case errors.Is(err, generation.ErrEmptyTopic):
		return "Topic cannot be empty"

	case errors.Is(err, service.ErrGenerationInProgress):
		return "A generation request is already in progress"

	case errors.Is(err, generation.ErrEmptyResponse):
		return "The AI service returned an empty response"

	case errors.Is(err, generation.ErrNoValidFlashcards):
		return "The AI response contained no usable flashcards"

	case errors.Is(err, generation.ErrUpstreamFailure):
		return "The AI service is currently unavailable"

	default:
		return "An unexpected error occurred"
	}
}
