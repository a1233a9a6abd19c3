package service

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/manon-manin/site-api/internal/mailer"
	"github.com/manon-manin/site-api/internal/models"
	"github.com/manon-manin/site-api/internal/observability"
)

// DeliveryResult reports the outcome of a synchronous email leg. Delivered
// is false on any failure, including a transport that was never configured.
type DeliveryResult struct {
	Delivered   bool
	PreviewLink string
}

// Notifier composes and attempts delivery of outbound email. Failures never
// escape as errors from the synchronous legs; callers only see the result.
type Notifier interface {
	SendContactNotification(ctx context.Context, contact models.StoredContact) DeliveryResult
	SendContactConfirmation(ctx context.Context, contact models.StoredContact) error
	SendNewsletterWelcome(ctx context.Context, subscription models.StoredNewsletter) DeliveryResult
}

// NotifierConfig carries the addresses the notifier writes from and to.
type NotifierConfig struct {
	SenderEmail   string
	SenderName    string
	OperatorEmail string
}

type mailNotifier struct {
	transport mailer.Transport
	config    NotifierConfig
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewNotifier constructs the email dispatcher over the resolved transport.
func NewNotifier(transport mailer.Transport, config NotifierConfig, logger zerolog.Logger) Notifier {
	return &mailNotifier{
		transport: transport,
		config:    config,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "notifier").Logger(),
	}
}

// SendContactNotification renders the operator-facing message and attempts
// delivery to the operator inbox with Reply-To set to the submitter.
func (n *mailNotifier) SendContactNotification(ctx context.Context, contact models.StoredContact) DeliveryResult {
	if !n.transport.Configured() {
		n.logger.Warn().Msg("contact notification not sent - transport not configured")
		observability.EmailDeliveries().WithLabelValues("contact_notification", "skipped").Inc()
		return DeliveryResult{}
	}

	data := contactMailData{
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		TypeLabel:   contact.SupportType.Label(),
		Message:     contact.Message,
		MessageHTML: htmltemplate.HTML(n.sanitizer.Sanitize(contact.Message)),
	}

	html, text, err := renderMail(contactNotificationHTML, contactNotificationText, data)
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to render contact notification")
		observability.EmailDeliveries().WithLabelValues("contact_notification", "failed").Inc()
		return DeliveryResult{}
	}

	email := mailer.Email{
		From:    mailer.Recipient("Site Post-Partum", n.config.SenderEmail),
		To:      []string{n.config.OperatorEmail},
		ReplyTo: contact.Email,
		Subject: fmt.Sprintf("Nouveau message de %s", contact.Name),
		HTML:    html,
		Text:    text,
	}

	result, err := n.transport.Sender.Send(ctx, &email)
	if err != nil {
		n.logger.Error().Err(err).Str("contact_id", contact.ID).Msg("failed to send contact notification")
		observability.EmailDeliveries().WithLabelValues("contact_notification", "failed").Inc()
		return DeliveryResult{}
	}

	n.logger.Info().Str("message_id", result.MessageID).Str("contact_id", contact.ID).Msg("contact notification sent")
	observability.EmailDeliveries().WithLabelValues("contact_notification", "sent").Inc()

	return DeliveryResult{Delivered: true, PreviewLink: result.PreviewURL}
}

// SendContactConfirmation renders the warm confirmation addressed to the
// submitter. It is best-effort; the caller decides what to do with the error.
func (n *mailNotifier) SendContactConfirmation(ctx context.Context, contact models.StoredContact) error {
	if !n.transport.Configured() {
		observability.EmailDeliveries().WithLabelValues("contact_confirmation", "skipped").Inc()
		return nil
	}

	html, text, err := renderMail(contactConfirmationHTML, contactConfirmationText, confirmationMailData{Name: contact.Name})
	if err != nil {
		observability.EmailDeliveries().WithLabelValues("contact_confirmation", "failed").Inc()
		return fmt.Errorf("render contact confirmation: %w", err)
	}

	email := mailer.Email{
		From:    mailer.Recipient(n.config.SenderName, n.config.SenderEmail),
		To:      []string{contact.Email},
		Subject: "Confirmation de votre message",
		HTML:    html,
		Text:    text,
	}

	if _, err := n.transport.Sender.Send(ctx, &email); err != nil {
		observability.EmailDeliveries().WithLabelValues("contact_confirmation", "failed").Inc()
		return fmt.Errorf("send contact confirmation: %w", err)
	}

	observability.EmailDeliveries().WithLabelValues("contact_confirmation", "sent").Inc()

	return nil
}

// SendNewsletterWelcome renders the welcome message for the subscriber and,
// when an operator inbox is configured, a separate operator notification.
// The two legs are independent; only the subscriber leg drives Delivered.
func (n *mailNotifier) SendNewsletterWelcome(ctx context.Context, subscription models.StoredNewsletter) DeliveryResult {
	if !n.transport.Configured() {
		n.logger.Warn().Msg("newsletter welcome not sent - transport not configured")
		observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "skipped").Inc()
		return DeliveryResult{}
	}

	outcome := DeliveryResult{}

	html, text, err := renderMail(newsletterWelcomeHTML, newsletterWelcomeText, struct{}{})
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to render newsletter welcome")
		observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "failed").Inc()
	} else {
		email := mailer.Email{
			From:    mailer.Recipient(n.config.SenderName, n.config.SenderEmail),
			To:      []string{subscription.Email},
			Subject: "Bienvenue dans notre newsletter !",
			HTML:    html,
			Text:    text,
		}

		result, sendErr := n.transport.Sender.Send(ctx, &email)
		if sendErr != nil {
			n.logger.Error().Err(sendErr).Str("subscription_id", subscription.ID).Msg("failed to send newsletter welcome")
			observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "failed").Inc()
		} else {
			outcome = DeliveryResult{Delivered: true, PreviewLink: result.PreviewURL}
			observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "sent").Inc()
		}
	}

	if n.config.OperatorEmail != "" {
		n.sendNewsletterOperatorNote(ctx, subscription)
	}

	return outcome
}

func (n *mailNotifier) sendNewsletterOperatorNote(ctx context.Context, subscription models.StoredNewsletter) {
	var buf bytes.Buffer
	if err := newsletterOperatorText.Execute(&buf, subscription); err != nil {
		n.logger.Error().Err(err).Msg("failed to render newsletter operator note")
		observability.EmailDeliveries().WithLabelValues("newsletter_operator", "failed").Inc()
		return
	}

	email := mailer.Email{
		From:    mailer.Recipient("Site Post-Partum", n.config.SenderEmail),
		To:      []string{n.config.OperatorEmail},
		Subject: "Nouvelle inscription à la newsletter",
		Text:    buf.String(),
	}

	if _, err := n.transport.Sender.Send(ctx, &email); err != nil {
		n.logger.Warn().Err(err).Str("subscription_id", subscription.ID).Msg("failed to send newsletter operator note")
		observability.EmailDeliveries().WithLabelValues("newsletter_operator", "failed").Inc()
		return
	}

	observability.EmailDeliveries().WithLabelValues("newsletter_operator", "sent").Inc()
}

func renderMail(htmlTmpl *htmltemplate.Template, textTmpl *template.Template, data any) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}

	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", err
	}

	return htmlBuf.String(), textBuf.String(), nil
}
