package assisthandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixster-server/internal/domain/assist"
	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/requests/assistreq"
)

// AssistHandler serves the model-backed assist endpoints. Response bodies are
// kept stable for the web client: failures surface as renderable output
// strings, not error envelopes.
type AssistHandler struct {
	assistService  *assist.Service
	snippetService *snippet.Service
}

func NewAssistHandler(assistService *assist.Service, snippetService *snippet.Service) *AssistHandler {
	return &AssistHandler{
		assistService:  assistService,
		snippetService: snippetService,
	}
}

// Debug analyzes submitted code and returns sectioned Markdown.
func (h *AssistHandler) Debug(c *gin.Context) {
	var req assistreq.DebugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"output": "Server error processing request. Check server logs for details.",
		})
		return
	}

	if req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No code provided"})
		return
	}

	// Authenticated callers get the snippet remembered in their recents.
	if userID := middlewares.GetUserID(c); userID != "" {
		if _, err := h.snippetService.Record(c.Request.Context(), userID, req.Code, ""); err != nil {
			log := logger.GetLogger()
			log.Warn().Err(err).Msg("failed to record snippet")
		}
	}

	output := h.assistService.DebugCode(c.Request.Context(), req.Code)
	c.JSON(http.StatusOK, gin.H{"output": output})
}

// Chat answers a freeform message conversationally.
func (h *AssistHandler) Chat(c *gin.Context) {
	var req assistreq.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"output": "I apologize, but something went wrong. Please try again later.",
		})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	output := h.assistService.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"output": output})
}

// RunCode asks the model to simulate executing the code. Every outcome is a
// 200 with the fixed three-section format.
func (h *AssistHandler) RunCode(c *gin.Context) {
	var req assistreq.RunCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"output": "Output:\nSystem error\n\nErrors or Warnings:\nRequest processing failed\n\nExplanation:\nThe server failed to process your request. Please verify your code and try again.",
		})
		return
	}

	if req.Code == "" {
		c.JSON(http.StatusOK, gin.H{"output": assist.RunCodeEmptyFallback})
		return
	}

	output := h.assistService.RunCode(c.Request.Context(), req.Code, req.Language)
	c.JSON(http.StatusOK, gin.H{"output": output})
}
