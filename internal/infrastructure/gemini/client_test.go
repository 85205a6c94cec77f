package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixster-server/internal/config"
	"fixster-server/internal/infrastructure/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *gemini.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gemini.NewClient(&config.Config{
		GeminiAPIKey:  apiKey,
		GeminiModel:   "gemini-2.0-flash",
		GeminiBaseURL: server.URL,
		HTTPTimeout:   5 * time.Second,
	})
}

func TestGenerateContentNotConfigured(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an API key")
	}, "")

	assert.False(t, client.Configured())

	_, err := client.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGenerateContentSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello, "},{"text":"world!"}]}}]}`))
	}, "secret")

	out, err := client.GenerateContent(context.Background(), "say hello")

	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", out)
}

func TestGenerateContentAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}, "bad-key")

	_, err := client.GenerateContent(context.Background(), "say hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateContentNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}, "secret")

	_, err := client.GenerateContent(context.Background(), "say hello")

	assert.Error(t, err)
}
