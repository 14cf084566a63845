package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/session"
)

// StoreKey is the fixed key under which the credential is held in the
// session store.
const StoreKey = "flashdeck_api_key"

// Status represents the lifecycle state of the session credential.
type Status string

// Possible credential status values
const (
	StatusAbsent   Status = "absent"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
)

// Common errors returned by the gate
var (
	// ErrEmptySecret is returned when the supplied secret is empty or whitespace.
	ErrEmptySecret = errors.New("credential cannot be empty")

	// ErrInitFailed is returned when the upstream client could not be
	// constructed from the supplied secret. The credential stays absent.
	ErrInitFailed = errors.New("failed to initialize upstream client")

	// ErrNotInitialized is returned when generation is requested without an
	// active credential.
	ErrNotInitialized = errors.New("no active credential")
)

// GeneratorFactory constructs an upstream-backed generator from a secret.
// Activation calls it once per supplied key; a factory error is surfaced as
// ErrInitFailed and leaves the gate unchanged.
type GeneratorFactory func(ctx context.Context, secret string) (generation.Generator, error)

// Gate holds the single session credential slot and the generator built from
// it. It is safe for concurrent use.
type Gate struct {
	mu        sync.Mutex
	store     session.Store
	factory   GeneratorFactory
	logger    *slog.Logger
	status    Status
	generator generation.Generator
}

// NewGate creates a Gate backed by the given session store and generator
// factory. It returns an error if either dependency is nil.
func NewGate(store session.Store, factory GeneratorFactory, logger *slog.Logger) (*Gate, error) {
	if store == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if factory == nil {
		return nil, errors.New("generator factory cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Gate{
		store:   store,
		factory: factory,
		logger:  logger.With("component", "credential_gate"),
		status:  StatusAbsent,
	}, nil
}

// HasCredential reports whether the credential is active.
func (g *Gate) HasCredential() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status == StatusActive
}

// Status returns the current credential state.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Activate accepts a secret, constructs the upstream generator from it, and
// moves the credential to the active state. A trimmed-empty secret fails with
// ErrEmptySecret; a factory failure fails with ErrInitFailed and leaves the
// previous state untouched.
func (g *Gate) Activate(ctx context.Context, secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ErrEmptySecret
	}

	generator, err := g.factory(ctx, secret)
	if err != nil {
		g.logger.Error("upstream client construction failed", "error", err)
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.store.Set(StoreKey, secret)
	g.status = StatusActive
	g.generator = generator

	g.logger.Info("credential activated")
	return nil
}

// Generator returns the active upstream-backed generator, or
// ErrNotInitialized when no credential is active.
func (g *Gate) Generator() (generation.Generator, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusActive || g.generator == nil {
		return nil, ErrNotInitialized
	}
	return g.generator, nil
}

// Reject discards the credential after the upstream reported it invalid.
// The gate reports the rejected state until the next Activate or Clear so
// the caller can re-prompt with an explanation.
func (g *Gate) Reject() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.store.Remove(StoreKey)
	g.status = StatusRejected
	g.generator = nil

	g.logger.Warn("credential rejected by upstream, cleared")
}

// Clear discards the credential at the user's request, without implying it
// was invalid.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.store.Remove(StoreKey)
	g.status = StatusAbsent
	g.generator = nil

	g.logger.Info("credential cleared")
}
