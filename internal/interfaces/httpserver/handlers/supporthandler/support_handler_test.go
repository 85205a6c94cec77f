package supporthandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixster-server/internal/interfaces/httpserver/handlers/supporthandler"
)

type fakeMailer struct {
	configured bool
	err        error
	sentFrom   string
	sentBody   string
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendSupportMessage(ctx context.Context, fromEmail, message string) error {
	f.sentFrom = fromEmail
	f.sentBody = message
	return f.err
}

func sendSupport(t *testing.T, mail *fakeMailer, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := supporthandler.NewSupportHandler(mail)
	router := gin.New()
	router.POST("/support", handler.Send)

	req := httptest.NewRequest(http.MethodPost, "/support", bytes.NewBufferString(body))
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

func TestSendSuccess(t *testing.T) {
	mail := &fakeMailer{configured: true}

	rec := sendSupport(t, mail, `{"email":"user@example.com","message":"help me"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
	assert.Equal(t, "user@example.com", mail.sentFrom)
	assert.Equal(t, "help me", mail.sentBody)
}

func TestSendMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no email", `{"message":"help me"}`},
		{"no message", `{"email":"user@example.com"}`},
		{"empty body", `{}`},
		{"invalid email", `{"email":"not-an-email","message":"help me"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mail := &fakeMailer{configured: true}

			rec := sendSupport(t, mail, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Email and message are required", decodeBody(t, rec)["error"])
			assert.Empty(t, mail.sentFrom)
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	mail := &fakeMailer{configured: false}

	rec := sendSupport(t, mail, `{"email":"user@example.com","message":"help me"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Email service not configured", decodeBody(t, rec)["error"])
}

func TestSendRelayFailure(t *testing.T) {
	mail := &fakeMailer{configured: true, err: errors.New("smtp: connection refused")}

	rec := sendSupport(t, mail, `{"email":"user@example.com","message":"help me"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send support message", decodeBody(t, rec)["error"])
}

func TestSendMalformedBody(t *testing.T) {
	mail := &fakeMailer{configured: true}

	rec := sendSupport(t, mail, `{"email": 7}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send support message", decodeBody(t, rec)["error"])
}
