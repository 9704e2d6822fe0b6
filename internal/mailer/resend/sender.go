// Package resend delivers mailer emails through the Resend API.
package resend

import (
	"context"
	"fmt"
	"sort"

	"github.com/resend/resend-go/v3"

	"github.com/ys-perfumes/order-service/internal/mailer"
)

// Config holds Resend credentials and the verified sender identity.
type Config struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return NewWithClient(resend.NewClient(cfg.APIKey), cfg)
}

// NewWithClient creates a sender around an existing client.
func NewWithClient(client *resend.Client, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender.
//
// Resend only accepts verified sender domains, so the message always goes
// out from the configured sender. The original From becomes Reply-To when
// no explicit Reply-To is set.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	replyTo := email.ReplyTo
	if replyTo == "" {
		replyTo = email.From
	}

	req := &resend.SendEmailRequest{
		From:    mailer.Address(s.config.SenderName, s.config.SenderEmail),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
		ReplyTo: replyTo,
		Headers: email.Headers,
		Tags:    convertTags(email.Tags),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

func convertTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]resend.Tag, 0, len(tags))
	for _, name := range names {
		out = append(out, resend.Tag{Name: name, Value: tags[name]})
	}
	return out
}
