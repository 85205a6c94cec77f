package assist

import (
	"github.com/gin-gonic/gin"

	"fixster-server/internal/interfaces/httpserver/handlers/assisthandler"
	"fixster-server/internal/interfaces/httpserver/handlers/supporthandler"
)

// AssistRoute exposes the model-backed endpoints the web client calls
// directly. They are public; identity, when present, only enriches behavior.
type AssistRoute struct {
	assistHandler  *assisthandler.AssistHandler
	supportHandler *supporthandler.SupportHandler
}

func NewAssistRoute(
	assistHandler *assisthandler.AssistHandler,
	supportHandler *supporthandler.SupportHandler,
) *AssistRoute {
	return &AssistRoute{
		assistHandler:  assistHandler,
		supportHandler: supportHandler,
	}
}

// RegisterRouter registers the assist endpoints on the given router.
func (r *AssistRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/debug", r.assistHandler.Debug)
	router.POST("/chat", r.assistHandler.Chat)
	router.POST("/run-code", r.assistHandler.RunCode)
	router.POST("/support", r.supportHandler.Send)
}
