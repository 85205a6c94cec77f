package supporthandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/infrastructure/mailer"
	"fixster-server/internal/infrastructure/metrics"
	"fixster-server/internal/interfaces/httpserver/requests/supportreq"
)

// SupportHandler relays user support messages to the operator mailbox.
type SupportHandler struct {
	mail mailer.Mailer
}

func NewSupportHandler(mail mailer.Mailer) *SupportHandler {
	return &SupportHandler{mail: mail}
}

// Send validates and relays one support request.
func (h *SupportHandler) Send(c *gin.Context) {
	var req supportreq.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send support message"})
		return
	}

	if !req.HasRequiredFields() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and message are required"})
		return
	}

	if !req.ValidEmail() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and message are required"})
		return
	}

	if !h.mail.Configured() {
		metrics.RecordSupportMail("unconfigured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
		return
	}

	if err := h.mail.SendSupportMessage(c.Request.Context(), req.Email, req.Message); err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("Support email error")
		metrics.RecordSupportMail("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send support message"})
		return
	}

	metrics.RecordSupportMail("sent")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
