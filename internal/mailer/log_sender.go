package mailer

import (
	"context"
	"log/slog"
)

// LogSender is a placeholder transport: it validates the envelope and
// writes the message to the log instead of delivering it.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender writing to log.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email prepared",
		"from", email.From,
		"to", email.To,
		"reply_to", email.ReplyTo,
		"subject", email.Subject,
		"headers", email.Headers,
		"body", email.Text,
	)
	s.log.InfoContext(ctx, "email not delivered, log transport only", "to", email.To)

	return nil
}
