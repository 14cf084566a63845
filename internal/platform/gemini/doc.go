// Package gemini implements the generation interfaces using Google's Gemini
// API via the google.golang.org/genai client library. It owns prompt template
// handling, the upstream call, and classification of upstream failures
// (notably the invalid-API-key signal that forces a credential reset).
package gemini
