package assisthandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixster-server/internal/config"
	"fixster-server/internal/domain/assist"
	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/interfaces/httpserver/handlers/assisthandler"
)

type fakeModelClient struct {
	configured bool
	reply      string
	err        error
}

func (f *fakeModelClient) Configured() bool { return f.configured }

func (f *fakeModelClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

type fakeSnippetRepo struct {
	created []*snippet.Snippet
}

func (f *fakeSnippetRepo) Create(ctx context.Context, snip *snippet.Snippet) error {
	f.created = append(f.created, snip)
	return nil
}

func (f *fakeSnippetRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]*snippet.Snippet, error) {
	return f.created, nil
}

func (f *fakeSnippetRepo) TrimToNewest(ctx context.Context, userID string, keep int) error {
	return nil
}

func (f *fakeSnippetRepo) TrimAll(ctx context.Context, keep int) error {
	return nil
}

func newTestRouter(client assist.ModelClient, repo snippet.Repository, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	assistService := assist.NewService(client, config.DefaultPromptConfigs())
	snippetService := snippet.NewService(repo)
	handler := assisthandler.NewAssistHandler(assistService, snippetService)

	router := gin.New()
	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}
	router.POST("/debug", handler.Debug)
	router.POST("/chat", handler.Chat)
	router.POST("/run-code", handler.RunCode)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDebugNoCode(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/debug", `{"code":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No code provided", decodeBody(t, rec)["error"])
}

func TestDebugMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/debug", `{"code": 42`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server error processing request. Check server logs for details.", decodeBody(t, rec)["output"])
}

func TestDebugMissingAPIKey(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: false}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/debug", `{"code":"const x = 1;"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assist.DebugMissingKeyFallback, decodeBody(t, rec)["output"])
}

func TestDebugReturnsModelOutput(t *testing.T) {
	client := &fakeModelClient{configured: true, reply: "# Code Overview\nAssigns a constant."}
	router := newTestRouter(client, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/debug", `{"code":"const x = 1;"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, client.reply, decodeBody(t, rec)["output"])
}

func TestDebugRecordsSnippetForAuthenticatedUser(t *testing.T) {
	repo := &fakeSnippetRepo{}
	router := newTestRouter(&fakeModelClient{configured: true, reply: "ok"}, repo, "user_1")

	rec := postJSON(t, router, "/debug", `{"code":"const x = 1;"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "user_1", repo.created[0].UserID)
	assert.Equal(t, "const x = 1;", repo.created[0].Code)
}

func TestDebugSkipsSnippetForAnonymousUser(t *testing.T) {
	repo := &fakeSnippetRepo{}
	router := newTestRouter(&fakeModelClient{configured: true, reply: "ok"}, repo, "")

	rec := postJSON(t, router, "/debug", `{"code":"const x = 1;"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.created)
}

func TestChatNoMessage(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/chat", `{"message":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No message provided", decodeBody(t, rec)["error"])
}

func TestChatMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/chat", `not json`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "I apologize, but something went wrong. Please try again later.", decodeBody(t, rec)["output"])
}

func TestChatMissingAPIKey(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: false}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assist.ChatMissingKeyFallback, decodeBody(t, rec)["output"])
}

func TestRunCodeNoCode(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/run-code", `{"code":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assist.RunCodeEmptyFallback, decodeBody(t, rec)["output"])
}

func TestRunCodeMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: true}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/run-code", `{`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["output"], "System error")
	assert.Contains(t, body["output"], "Request processing failed")
}

func TestRunCodeMissingAPIKey(t *testing.T) {
	router := newTestRouter(&fakeModelClient{configured: false}, &fakeSnippetRepo{}, "")

	rec := postJSON(t, router, "/run-code", `{"code":"print(1)","language":"python"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assist.RunCodeMissingKeyFallback, decodeBody(t, rec)["output"])
}
