// Package mailer delivers the transactional emails the identity flows need:
// address verification and password resets.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Mailer interface {
	SendVerification(ctx context.Context, to, link string) error
	SendPasswordReset(ctx context.Context, to, link string) error
}

// SMTPMailer sends over an authenticated SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, link string) error {
	return m.send(ctx, to, "Verify your email address",
		"Welcome! Please verify your email address by opening the link below.\n\n"+link+"\n")
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	return m.send(ctx, to, "Reset your password",
		"A password reset was requested for your account. Open the link below to choose a new password.\n\n"+link+"\n")
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return m.client.DialAndSendWithContext(ctx, msg)
}

// LogMailer logs instead of sending, for deployments without SMTP
// credentials and for tests.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendVerification(ctx context.Context, to, link string) error {
	m.Logger.Info("verification email suppressed (no SMTP configured)",
		zap.String("to", to), zap.String("link", link))
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, link string) error {
	m.Logger.Info("password reset email suppressed (no SMTP configured)",
		zap.String("to", to), zap.String("link", link))
	return nil
}
