package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/credential"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/generation"
)

// scriptedGenerator parses a canned upstream response through the real
// parser, so end-to-end tests exercise the full pipeline below the network.
type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, generation.ErrEmptyTopic
	}
	if g.err != nil {
		return nil, g.err
	}
	return generation.ParseFlashcards(g.response)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		LLM:    config.LLMConfig{ModelName: "gemini-2.0-flash", TimeoutSeconds: 5},
	}
}

func newTestApp(t *testing.T, gen generation.Generator) (*application, http.Handler) {
	t.Helper()

	factory := func(ctx context.Context, secret string) (generation.Generator, error) {
		return gen, nil
	}

	app, err := newApplication(testConfig(), slog.Default(), factory)
	require.NoError(t, err)

	return app, app.setupRouter()
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	_, router := newTestApp(t, &scriptedGenerator{})

	rr := doJSON(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestGenerateRequiresCredential(t *testing.T) {
	t.Parallel()

	_, router := newTestApp(t, &scriptedGenerator{response: "A: B"})

	rr := doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"Colors"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGenerateEndToEnd(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{response: "Red: A warm color\nBlue: A cool color"}
	_, router := newTestApp(t, gen)

	// Supply the credential
	rr := doJSON(router, http.MethodPut, "/api/credential", `{"key":"sk-test-key"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Generate
	rr = doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"Colors"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Flashcards []struct {
			Term       string `json:"term"`
			Definition string `json:"definition"`
		} `json:"flashcards"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Flashcards, 2)
	assert.Equal(t, "Red", resp.Flashcards[0].Term)
	assert.Equal(t, "A warm color", resp.Flashcards[0].Definition)
	assert.Equal(t, "Blue", resp.Flashcards[1].Term)
	assert.Equal(t, "A cool color", resp.Flashcards[1].Definition)
}

func TestGenerateWhitespaceTopic(t *testing.T) {
	t.Parallel()

	_, router := newTestApp(t, &scriptedGenerator{response: "A: B"})

	rr := doJSON(router, http.MethodPut, "/api/credential", `{"key":"sk-test-key"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInvalidCredentialResetsGateEndToEnd(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{
		err: fmt.Errorf("%w: API key not valid", generation.ErrInvalidCredential),
	}
	app, router := newTestApp(t, gen)

	rr := doJSON(router, http.MethodPut, "/api/credential", `{"key":"sk-test-key"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"Colors"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// The gate was reset; the next attempt re-prompts for a key
	assert.Equal(t, credential.StatusRejected, app.gate.Status())

	rr = doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"Colors"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnusableUpstreamResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
	}{
		{name: "empty response", response: ""},
		{name: "blank lines only", response: "\n\n"},
		{name: "no parseable pairs", response: "nothing here\nstill nothing"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, router := newTestApp(t, &scriptedGenerator{response: tt.response})

			rr := doJSON(router, http.MethodPut, "/api/credential", `{"key":"sk-test-key"}`)
			require.Equal(t, http.StatusNoContent, rr.Code)

			rr = doJSON(router, http.MethodPost, "/api/flashcards", `{"topic":"Colors"}`)
			assert.Equal(t, http.StatusBadGateway, rr.Code)
		})
	}
}

func TestCredentialLifecycleEndToEnd(t *testing.T) {
	t.Parallel()

	_, router := newTestApp(t, &scriptedGenerator{response: "A: B"})

	status := func() string {
		rr := doJSON(router, http.MethodGet, "/api/credential", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp.Status
	}

	assert.Equal(t, "absent", status())

	rr := doJSON(router, http.MethodPut, "/api/credential", `{"key":"sk-test-key"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "active", status())

	rr = doJSON(router, http.MethodDelete, "/api/credential", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "absent", status())
}
