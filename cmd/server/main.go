// Package main implements the entry point for the Flashdeck API server,
// the backend of the browser flashcard generator. It gates access to the
// generation feature behind a session credential and turns user topics into
// term/definition flashcards via the Gemini completion API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/credential"
	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/platform/gemini"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
)

func main() {
	// Best-effort .env load for local development; the environment wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, appLogger, geminiFactory(cfg, appLogger))
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config, the configured logger, and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	return cfg, appLogger, nil
}

// geminiFactory builds the gate's generator factory: each accepted API key
// gets its own Gemini-backed generator.
func geminiFactory(cfg *config.Config, appLogger *slog.Logger) credential.GeneratorFactory {
	return func(ctx context.Context, secret string) (generation.Generator, error) {
		return gemini.NewGenerator(
			ctx,
			appLogger.With("component", "llm_generator"),
			cfg.LLM,
			secret,
		)
	}
}
