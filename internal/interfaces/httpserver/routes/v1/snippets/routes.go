package snippets

import (
	"github.com/gin-gonic/gin"

	"fixster-server/internal/interfaces/httpserver/handlers/snippethandler"
	"fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/requests/snippetreq"
	"fixster-server/internal/interfaces/httpserver/responses"
	"fixster-server/internal/utils/platformerrors"
)

type SnippetRoute struct {
	handler *snippethandler.SnippetHandler
}

func NewSnippetRoute(handler *snippethandler.SnippetHandler) *SnippetRoute {
	return &SnippetRoute{
		handler: handler,
	}
}

// RegisterRoutes registers snippet routes
func (r *SnippetRoute) RegisterRoutes(rg gin.IRouter) {
	snippets := rg.Group("/snippets")
	snippets.GET("", r.listSnippets)
	snippets.POST("", r.recordSnippet)
}

func (r *SnippetRoute) listSnippets(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "snip-list-001")
		return
	}

	response, err := r.handler.ListSnippets(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to list snippets")
		return
	}

	reqCtx.JSON(200, response)
}

func (r *SnippetRoute) recordSnippet(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID := middlewares.GetUserID(reqCtx)
	if userID == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "snip-record-001")
		return
	}

	var req snippetreq.RecordSnippetRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "snip-record-002")
		return
	}

	response, err := r.handler.RecordSnippet(ctx, userID, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "Failed to record snippet")
		return
	}

	reqCtx.JSON(201, response)
}
