package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/model"
)

var msg = model.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Keynote", Message: "Would you speak?"}

func TestNotifyNotConfigured(t *testing.T) {
	m := New(config.SMTP{Host: "smtp.example.com", Port: "587"}, zap.NewNop())
	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.Notify(context.Background(), msg), ErrNotConfigured)
}

func TestNotify(t *testing.T) {
	cfg := config.SMTP{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "secret", To: "owner@example.com"}
	m := New(cfg, zap.NewNop())

	var (
		gotAddr string
		gotTo   []string
		gotBody string
	)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, body []byte) error {
		gotAddr, gotTo, gotBody = addr, to, string(body)
		assert.Equal(t, "me@example.com", from)
		return nil
	}

	require.NoError(t, m.Notify(context.Background(), msg))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, gotBody, "Subject: Portfolio Contact: Ada - Keynote\r\n")
	assert.Contains(t, gotBody, "Reply-To: ada@example.com\r\n")
	assert.True(t, strings.Contains(gotBody, "Would you speak?"))
}

func TestNotifySendError(t *testing.T) {
	cfg := config.SMTP{Host: "h", Port: "25", User: "u", Pass: "p", To: "t"}
	m := New(cfg, zap.NewNop())
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }

	assert.Error(t, m.Notify(context.Background(), msg))
}

func TestComposeKeepsVisitorInputOutOfHeaders(t *testing.T) {
	injected := model.ContactMessage{
		Name:    "Ada",
		Email:   "a@b.c\r\nBcc: victim@example.com",
		Subject: "hi\r\nX-Injected: yes",
		Message: "Hello",
	}
	raw := string(compose("me@example.com", "owner@example.com", injected))

	headers, _, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	lines := strings.Split(headers, "\r\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.NotContains(t, line, "\n")
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
		assert.False(t, strings.HasPrefix(line, "X-Injected:"), line)
	}
	assert.Equal(t, "Subject: Portfolio Contact: Ada - hi X-Injected: yes", lines[1])
	assert.Equal(t, "Reply-To: a@b.c Bcc: victim@example.com", lines[3])
}
