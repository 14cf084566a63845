package credential

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/session"
)

// stubGenerator is a minimal generation.Generator for gate tests.
type stubGenerator struct{}

func (s *stubGenerator) GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	return nil, nil
}

func okFactory(ctx context.Context, secret string) (generation.Generator, error) {
	return &stubGenerator{}, nil
}

func TestNewGate(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()

	_, err := NewGate(nil, okFactory, slog.Default())
	assert.Error(t, err, "nil store must be rejected")

	_, err = NewGate(store, nil, slog.Default())
	assert.Error(t, err, "nil factory must be rejected")

	gate, err := NewGate(store, okFactory, nil)
	require.NoError(t, err, "nil logger falls back to default")
	assert.Equal(t, StatusAbsent, gate.Status())
	assert.False(t, gate.HasCredential())
}

func TestGateActivate(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	gate, err := NewGate(store, okFactory, slog.Default())
	require.NoError(t, err)

	// Empty and whitespace-only secrets fail before the factory runs
	err = gate.Activate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySecret)

	err = gate.Activate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Equal(t, StatusAbsent, gate.Status())

	// Successful activation stores the trimmed secret and flips to active
	err = gate.Activate(context.Background(), "  sk-test-key  ")
	require.NoError(t, err)
	assert.True(t, gate.HasCredential())
	assert.Equal(t, StatusActive, gate.Status())

	stored, ok := store.Get(StoreKey)
	assert.True(t, ok)
	assert.Equal(t, "sk-test-key", stored)

	gen, err := gate.Generator()
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestGateActivateFactoryFailure(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	factoryErr := errors.New("malformed key")
	gate, err := NewGate(store, func(ctx context.Context, secret string) (generation.Generator, error) {
		return nil, factoryErr
	}, slog.Default())
	require.NoError(t, err)

	err = gate.Activate(context.Background(), "bad-key")
	assert.ErrorIs(t, err, ErrInitFailed)

	// Construction failure leaves the gate absent and the store empty
	assert.Equal(t, StatusAbsent, gate.Status())
	assert.False(t, gate.HasCredential())
	_, ok := store.Get(StoreKey)
	assert.False(t, ok)
}

func TestGateGeneratorWithoutCredential(t *testing.T) {
	t.Parallel()

	gate, err := NewGate(session.NewMemoryStore(), okFactory, slog.Default())
	require.NoError(t, err)

	_, err = gate.Generator()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestGateRejectAndClear(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	gate, err := NewGate(store, okFactory, slog.Default())
	require.NoError(t, err)

	require.NoError(t, gate.Activate(context.Background(), "sk-test-key"))

	// Reject discards the secret and surfaces the rejected state
	gate.Reject()
	assert.Equal(t, StatusRejected, gate.Status())
	assert.False(t, gate.HasCredential())
	_, ok := store.Get(StoreKey)
	assert.False(t, ok)

	_, err = gate.Generator()
	assert.ErrorIs(t, err, ErrNotInitialized)

	// Re-activation from rejected works
	require.NoError(t, gate.Activate(context.Background(), "sk-new-key"))
	assert.Equal(t, StatusActive, gate.Status())

	// Clear discards without implying the key was invalid
	gate.Clear()
	assert.Equal(t, StatusAbsent, gate.Status())
	assert.False(t, gate.HasCredential())
	_, ok = store.Get(StoreKey)
	assert.False(t, ok)
}
