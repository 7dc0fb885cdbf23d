// Package mail forwards contact messages to the site owner over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/model"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends one notification per contact message.
type Mailer struct {
	cfg  config.SMTP
	log  *zap.Logger
	send sendFunc
}

func New(cfg config.SMTP, log *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log, send: smtp.SendMail}
}

// Enabled reports whether credentials and a recipient are set.
func (m *Mailer) Enabled() bool {
	return m.cfg.User != "" && m.cfg.Pass != "" && m.cfg.To != ""
}

// Notify mails msg to the configured recipient. ctx is only checked before
// dialing; net/smtp has no cancellation.
func (m *Mailer) Notify(ctx context.Context, msg model.ContactMessage) error {
	if !m.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, compose(m.cfg.User, m.cfg.To, msg)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	m.log.Info("contact email sent", zap.String("from", msg.Email))
	return nil
}

// headerValue folds a visitor-supplied value onto one line.
func headerValue(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool { return r == '\r' || r == '\n' }), " ")
}

func compose(from, to string, msg model.ContactMessage) []byte {
	subject := headerValue(fmt.Sprintf("Portfolio Contact: %s - %s", msg.Name, msg.Subject))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerValue(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
