package snippetres

import (
	"fixster-server/internal/domain/snippet"
)

// SnippetResponse represents one recent snippet
type SnippetResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Code      string `json:"code"`
	Language  string `json:"language,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// SnippetListResponse represents the recent-snippets list, newest first
type SnippetListResponse struct {
	Object string            `json:"object"`
	Data   []SnippetResponse `json:"data"`
	Total  int               `json:"total"`
}

// NewSnippetResponse creates a response from a domain snippet
func NewSnippetResponse(snip *snippet.Snippet) *SnippetResponse {
	return &SnippetResponse{
		ID:        snip.PublicID,
		Object:    "snippet",
		Code:      snip.Code,
		Language:  snip.Language,
		CreatedAt: snip.CreatedAt.UnixMilli(),
	}
}

// NewSnippetListResponse creates a list response from domain snippets
func NewSnippetListResponse(snippets []*snippet.Snippet) *SnippetListResponse {
	data := make([]SnippetResponse, len(snippets))
	for i, snip := range snippets {
		data[i] = *NewSnippetResponse(snip)
	}
	return &SnippetListResponse{
		Object: "list",
		Data:   data,
		Total:  len(data),
	}
}
