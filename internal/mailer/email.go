package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoRecipient        = errors.New("email must have at least one recipient")
	ErrNoSubject          = errors.New("email must have a subject")
	ErrNoContent          = errors.New("email must have a body")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
	ErrRenderFailed       = errors.New("failed to render template")
)

// Sender delivers a fully prepared email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Email is a plain-text message ready for delivery.
type Email struct {
	Headers map[string]string
	Tags    map[string]string
	From    string
	ReplyTo string
	To      []string
	Subject string
	Text    string
}

// Validate reports the first missing part of the envelope.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.Text == "":
		return ErrNoContent
	}
	return nil
}

// Address formats a name and email as "Name <email>", or just the email
// when name is empty.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
