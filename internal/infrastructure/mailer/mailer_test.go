package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixster-server/internal/config"
)

func TestConfigured(t *testing.T) {
	cases := []struct {
		name     string
		account  string
		password string
		want     bool
	}{
		{"both set", "support@example.com", "secret", true},
		{"missing password", "support@example.com", "", false},
		{"missing account", "", "secret", false},
		{"neither", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewSMTPMailer(&config.Config{
				SupportEmail:         tc.account,
				SupportEmailPassword: tc.password,
			})
			assert.Equal(t, tc.want, m.Configured())
		})
	}
}

func TestSendSupportMessageUnconfigured(t *testing.T) {
	m := NewSMTPMailer(&config.Config{})

	err := m.SendSupportMessage(context.Background(), "user@example.com", "help")
	assert.Error(t, err)
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("support@example.com", "support@example.com",
		"user@example.com", "Support Request from user@example.com", "help me"))

	assert.Contains(t, msg, "From: support@example.com\r\n")
	assert.Contains(t, msg, "To: support@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: user@example.com\r\n")
	assert.Contains(t, msg, "Subject: Support Request from user@example.com\r\n")
	assert.Contains(t, msg, "Support request from: user@example.com")
	assert.Contains(t, msg, "help me")
}
