package snippethandler

import (
	"context"

	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/interfaces/httpserver/requests/snippetreq"
	"fixster-server/internal/interfaces/httpserver/responses/snippetres"
	"fixster-server/internal/utils/platformerrors"
)

type SnippetHandler struct {
	snippetService *snippet.Service
}

func NewSnippetHandler(snippetService *snippet.Service) *SnippetHandler {
	return &SnippetHandler{
		snippetService: snippetService,
	}
}

// ListSnippets returns the user's recent snippets, newest first.
func (h *SnippetHandler) ListSnippets(
	ctx context.Context,
	userID string,
) (*snippetres.SnippetListResponse, error) {
	snippets, err := h.snippetService.List(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list snippets")
	}

	return snippetres.NewSnippetListResponse(snippets), nil
}

// RecordSnippet stores one snippet in the user's recents, trimming the list.
func (h *SnippetHandler) RecordSnippet(
	ctx context.Context,
	userID string,
	req snippetreq.RecordSnippetRequest,
) (*snippetres.SnippetResponse, error) {
	snip, err := h.snippetService.Record(ctx, userID, req.Code, req.Language)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to record snippet")
	}
	if snip == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler,
			platformerrors.ErrorTypeValidation, "code is required", nil, "snip-record-003")
	}

	return snippetres.NewSnippetResponse(snip), nil
}
