package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flashdeck/flashdeck-api/internal/api"
	apiMiddleware "github.com/flashdeck/flashdeck-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Trace IDs for error correlation

	// Create API handlers using the application's services
	credentialHandler := api.NewCredentialHandler(app.gate, app.logger)
	flashcardHandler := api.NewFlashcardHandler(app.flashcardService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Credential gate endpoints
		r.Get("/credential", credentialHandler.GetStatus)
		r.Put("/credential", credentialHandler.Activate)
		r.Delete("/credential", credentialHandler.Clear)

		// Flashcard generation endpoint
		r.Post("/flashcards", flashcardHandler.GenerateFlashcards)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
