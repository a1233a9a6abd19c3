package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendConfig holds Resend email provider configuration.
type ResendConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	config ResendConfig
}

// NewResendSender creates a Resend-backed sender.
func NewResendSender(cfg ResendConfig) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, email *Email) (Result, error) {
	from := email.From
	if from == "" {
		from = Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}
	if email.ReplyTo != "" {
		req.ReplyTo = email.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("resend: failed to send email: %w", err)
	}

	return Result{MessageID: sent.Id}, nil
}
