// Package mailer sends outbound email.
package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer delivers mail over SMTP with plain auth.
type SMTPMailer struct {
	config SMTPConfig
}

// NewSMTPMailer creates a new SMTP mailer.
func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// Send delivers a plain-text message.
func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	if m.config.Username == "" || m.config.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.config.From, to, subject, body))

	addr := m.config.Host + ":" + m.config.Port
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	return smtp.SendMail(addr, auth, m.config.From, []string{to}, msg)
}

// LogMailer logs messages instead of sending them. Used in development
// when no SMTP server is configured.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message.
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	log.Printf("mail (dev mode) to=%s subject=%q\n%s", to, subject, body)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*LogMailer)(nil)
)
