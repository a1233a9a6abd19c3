package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/manon-manin/site-api/internal/mailer"
	"github.com/manon-manin/site-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type stubSender struct {
	mu     sync.Mutex
	emails []mailer.Email
	result mailer.Result
	failTo string
}

func (s *stubSender) Send(_ context.Context, email *mailer.Email) (mailer.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, *email)
	if s.failTo != "" && len(email.To) > 0 && email.To[0] == s.failTo {
		return mailer.Result{}, errors.New("send failed")
	}
	return s.result, nil
}

func (s *stubSender) sent() []mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailer.Email, len(s.emails))
	copy(out, s.emails)
	return out
}

func testNotifier(sender mailer.Sender) Notifier {
	transport := mailer.Transport{Mode: mailer.ModeSMTP, Sender: sender}
	return NewNotifier(transport, NotifierConfig{
		SenderEmail:   "noreply@manon-manin.fr",
		SenderName:    "Accompagnement Post-Partum",
		OperatorEmail: "contact@manon-manin.fr",
	}, testLogger())
}

func TestNotifierUnconfiguredSkipsAllSends(t *testing.T) {
	notifier := NewNotifier(mailer.Transport{Mode: mailer.ModeUnconfigured}, NotifierConfig{}, testLogger())
	contact := models.StoredContact{ID: "c1", Name: "Jo", Email: "jo@x.fr", Message: "Hello there friend"}

	result := notifier.SendContactNotification(context.Background(), contact)
	require.False(t, result.Delivered)
	require.Empty(t, result.PreviewLink)

	require.NoError(t, notifier.SendContactConfirmation(context.Background(), contact))

	welcome := notifier.SendNewsletterWelcome(context.Background(), models.StoredNewsletter{ID: "n1", Email: "jo@x.fr"})
	require.False(t, welcome.Delivered)
}

func TestContactNotificationOmitsAbsentPhone(t *testing.T) {
	sender := &stubSender{}
	notifier := testNotifier(sender)

	contact := models.StoredContact{ID: "c1", Name: "Jo", Email: "jo@x.fr", Message: "Hello there friend"}
	result := notifier.SendContactNotification(context.Background(), contact)
	require.True(t, result.Delivered)

	emails := sender.sent()
	require.Len(t, emails, 1)
	sent := emails[0]
	require.Equal(t, []string{"contact@manon-manin.fr"}, sent.To)
	require.Equal(t, "jo@x.fr", sent.ReplyTo)
	require.Equal(t, "Nouveau message de Jo", sent.Subject)
	require.NotContains(t, sent.HTML, "Téléphone")
	require.NotContains(t, sent.Text, "Téléphone")
	require.Contains(t, sent.HTML, "Non spécifié")
	require.Contains(t, sent.Text, "Non spécifié")
	require.Contains(t, sent.Text, "Hello there friend")
}

func TestContactNotificationRendersPhoneAndTypeLabel(t *testing.T) {
	sender := &stubSender{}
	notifier := testNotifier(sender)

	contact := models.StoredContact{
		ID:          "c2",
		Name:        "Marie",
		Email:       "marie@x.fr",
		Phone:       "06 12 34 56 78",
		Message:     "J'aimerais en savoir plus.",
		SupportType: models.SupportPostpartum,
	}
	result := notifier.SendContactNotification(context.Background(), contact)
	require.True(t, result.Delivered)

	sent := sender.sent()[0]
	require.Contains(t, sent.HTML, "Téléphone")
	require.Contains(t, sent.HTML, "06 12 34 56 78")
	require.Contains(t, sent.HTML, "Post-Partum")
	require.Contains(t, sent.Text, "Téléphone: 06 12 34 56 78")
	require.Contains(t, sent.Text, "Type d'accompagnement: Post-Partum")
}

func TestContactNotificationSendFailure(t *testing.T) {
	sender := &stubSender{failTo: "contact@manon-manin.fr"}
	notifier := testNotifier(sender)

	result := notifier.SendContactNotification(context.Background(), models.StoredContact{ID: "c3", Name: "Jo", Email: "jo@x.fr", Message: "Hello there friend"})
	require.False(t, result.Delivered)
	require.Empty(t, result.PreviewLink)
}

func TestContactNotificationPropagatesPreviewLink(t *testing.T) {
	sender := &stubSender{result: mailer.Result{MessageID: "abc", PreviewURL: "https://ethereal.email/message/abc"}}
	notifier := testNotifier(sender)

	result := notifier.SendContactNotification(context.Background(), models.StoredContact{ID: "c4", Name: "Jo", Email: "jo@x.fr", Message: "Hello there friend"})
	require.True(t, result.Delivered)
	require.Equal(t, "https://ethereal.email/message/abc", result.PreviewLink)
}

func TestContactConfirmationAddressedToSubmitter(t *testing.T) {
	sender := &stubSender{}
	notifier := testNotifier(sender)

	contact := models.StoredContact{ID: "c5", Name: "Jo", Email: "jo@x.fr", Message: "Hello there friend"}
	require.NoError(t, notifier.SendContactConfirmation(context.Background(), contact))

	sent := sender.sent()[0]
	require.Equal(t, []string{"jo@x.fr"}, sent.To)
	require.Equal(t, "Confirmation de votre message", sent.Subject)
	require.Contains(t, sent.HTML, "Bonjour Jo")
	require.Contains(t, sent.Text, "Bonjour Jo")
}

func TestNewsletterWelcomeLegsAreIndependent(t *testing.T) {
	subscription := models.StoredNewsletter{ID: "n1", Email: "abo@x.fr"}

	// Subscriber leg fails, operator leg still goes out.
	sender := &stubSender{failTo: "abo@x.fr"}
	notifier := testNotifier(sender)
	result := notifier.SendNewsletterWelcome(context.Background(), subscription)
	require.False(t, result.Delivered)
	require.Len(t, sender.sent(), 2)

	// Operator leg fails, welcome still counts as delivered.
	sender = &stubSender{failTo: "contact@manon-manin.fr"}
	notifier = testNotifier(sender)
	result = notifier.SendNewsletterWelcome(context.Background(), subscription)
	require.True(t, result.Delivered)
	require.Len(t, sender.sent(), 2)
	require.Equal(t, "Bienvenue dans notre newsletter !", sender.sent()[0].Subject)
}

func TestContactNotificationStripsMarkupFromMessage(t *testing.T) {
	sender := &stubSender{}
	notifier := testNotifier(sender)

	contact := models.StoredContact{ID: "c6", Name: "Jo", Email: "jo@x.fr", Message: "<script>alert(1)</script>bonjour"}
	result := notifier.SendContactNotification(context.Background(), contact)
	require.True(t, result.Delivered)

	sent := sender.sent()[0]
	require.NotContains(t, sent.HTML, "<script>")
	require.Contains(t, sent.HTML, "bonjour")
}
