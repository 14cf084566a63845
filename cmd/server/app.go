package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/credential"
	"github.com/flashdeck/flashdeck-api/internal/service"
	"github.com/flashdeck/flashdeck-api/internal/session"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Session-scoped credential storage; contents end with the process
	sessionStore session.Store

	// Credential gate guarding the generation feature
	gate *credential.Gate

	// Flashcard generation use case
	flashcardService service.FlashcardService
}

// newApplication creates a new application instance with all dependencies
// initialized. The generator factory is injected so tests can substitute a
// stubbed upstream for the Gemini-backed one.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	factory credential.GeneratorFactory,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Session store: the single credential slot lives here
	app.sessionStore = session.NewMemoryStore()

	// Credential gate
	gate, err := credential.NewGate(app.sessionStore, factory, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential gate: %w", err)
	}
	app.gate = gate

	// Flashcard generation service
	app.flashcardService, err = service.NewFlashcardService(app.gate, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
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

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Drop the session credential; the session ends with the process.
	app.gate.Clear()

	app.logger.Info("Application shutdown completed")
}
