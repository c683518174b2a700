package service

import "context"

// Mail is one outbound message. Plain text only; the marketplace sends short
// transactional notices, not campaigns.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines the interface for sending transactional email. Only the
// worker delivery talks to it; API handlers never block on mail.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
