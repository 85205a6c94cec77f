package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"fixster-server/internal/config"
	"fixster-server/internal/domain/assist"
	"fixster-server/internal/infrastructure/metrics"
	"fixster-server/internal/utils/httpclients"
	"fixster-server/internal/utils/platformerrors"
)

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *resty.Client
}

var _ assist.ModelClient = (*Client)(nil)

// NewClient creates a Gemini client from config. The client is usable even
// without an API key; Configured reports false and callers degrade.
func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("gemini")
	client.SetTimeout(cfg.HTTPTimeout)
	client.SetRetryCount(0)

	return &Client{
		apiKey:  strings.TrimSpace(cfg.GeminiAPIKey),
		model:   cfg.GeminiModel,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		http:    client,
	}
}

// Configured implements assist.ModelClient.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content content `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateContent implements assist.ModelClient. It submits one prompt and
// returns the first candidate's concatenated text parts.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "gemini API key is not configured", nil, "gemini-01")
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	body := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	start := time.Now()
	var result generateContentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(endpoint)
	metrics.RecordModelCall(c.model, time.Since(start).Seconds())

	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, fmt.Sprintf("gemini request failed: %v", err), err, "gemini-02")
	}

	if resp.IsError() {
		msg := fmt.Sprintf("gemini returned status %d", resp.StatusCode())
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, msg, nil, "gemini-03")
	}

	if len(result.Candidates) == 0 {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "gemini returned no candidates", nil, "gemini-04")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
