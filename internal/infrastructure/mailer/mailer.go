package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"fixster-server/internal/config"
	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/utils/platformerrors"
)

// Mailer delivers support messages to the operator mailbox.
type Mailer interface {
	Configured() bool
	SendSupportMessage(ctx context.Context, fromEmail, message string) error
}

// SMTPMailer relays support messages through an authenticated SMTP account.
// The mail is sent from and to the configured support address; the user's
// address goes into Reply-To so the operator can answer directly.
type SMTPMailer struct {
	host     string
	port     int
	account  string
	password string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer from config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		account:  cfg.SupportEmail,
		password: cfg.SupportEmailPassword,
	}
}

// Configured implements Mailer.
func (m *SMTPMailer) Configured() bool {
	return m.account != "" && m.password != ""
}

// SendSupportMessage implements Mailer.
func (m *SMTPMailer) SendSupportMessage(ctx context.Context, fromEmail, message string) error {
	if !m.Configured() {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "email service not configured", nil, "mail-01")
	}

	subject := fmt.Sprintf("Support Request from %s", fromEmail)
	body := buildMessage(m.account, m.account, fromEmail, subject, message)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.account, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.account, []string{m.account}, body); err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("Error sending support email")
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "failed to send support message", err, "mail-02")
	}

	return nil
}

func buildMessage(from, to, replyTo, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("Support request from: %s\r\n\r\n", replyTo))
	sb.WriteString(body)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}
