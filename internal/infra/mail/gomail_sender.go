// Package mail provides the SMTP implementation of the Mailer service.
package mail

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// gomailSender implements the Mailer interface over plain SMTP.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// noopMailer logs instead of sending when SMTP is not configured. Useful for
// local development where a worker runs without a mail relay.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, mail *service.Mail) error {
	m.logger.Info("[NoopMailer] SMTP not configured, dropping mail",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}

// NewMailer creates a Mailer from configuration. Without an SMTP section it
// falls back to the logging no-op.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	smtp := cfg.SMTP
	if smtp == nil || smtp.Host == "" {
		logger.Info("SMTP not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	return &gomailSender{
		dialer: gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password),
		from:   smtp.From,
		logger: logger,
	}
}

// Send delivers one message through the configured relay. The context is
// honored only for early cancellation; gomail's dial has its own timeout.
func (s *gomailSender) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	s.logger.Info("Mail sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}
