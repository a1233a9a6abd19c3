package mailer

import (
	"context"
	"fmt"
)

// Email represents a fully-prepared message ready for sending.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Result reports provider-side metadata about a delivered message.
// PreviewURL is only populated by test transports that expose one.
type Result struct {
	MessageID  string
	PreviewURL string
}

// Sender is the minimal contract an email provider must implement.
type Sender interface {
	Send(ctx context.Context, email *Email) (Result, error)
}

// Recipient formats a name and address into RFC 5322 form.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
