package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/manon-manin/site-api/internal/dto"
	"github.com/manon-manin/site-api/internal/repository"
)

func TestNewsletterSubscribeTwiceResolvesToSameRecord(t *testing.T) {
	store := repository.NewMemoryStore()
	notifier := newStubNotifier()
	notifier.welcome = DeliveryResult{Delivered: true}
	svc := NewNewsletterService(store, NewValidator(), notifier, testLogger())

	first, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "x@y.fr"})
	require.NoError(t, err)
	require.False(t, first.Existing)
	require.True(t, first.EmailSent)

	second, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "x@y.fr"})
	require.NoError(t, err)
	require.True(t, second.Existing)
	require.Equal(t, first.Subscription.ID, second.Subscription.ID)
	require.Equal(t, first.Subscription.CreatedAt, second.Subscription.CreatedAt)

	newsletters, err := store.ListNewsletters(context.Background())
	require.NoError(t, err)
	require.Len(t, newsletters, 1)
}

func TestNewsletterSubscribeCaseInsensitiveDedup(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNewsletterService(store, NewValidator(), newStubNotifier(), testLogger())

	first, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "A@B.com"})
	require.NoError(t, err)

	second, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "a@b.com"})
	require.NoError(t, err)
	require.Equal(t, first.Subscription.ID, second.Subscription.ID)
}

func TestNewsletterSubscribeValidation(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNewsletterService(store, NewValidator(), newStubNotifier(), testLogger())

	_, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "not-an-email"})
	require.Error(t, err)

	var violations validator.ValidationErrors
	require.ErrorAs(t, err, &violations)
	require.Equal(t, "email", violations[0].Field())

	newsletters, err := store.ListNewsletters(context.Background())
	require.NoError(t, err)
	require.Empty(t, newsletters)
}

func TestNewsletterSubscribeWelcomeFailureStillSucceeds(t *testing.T) {
	store := repository.NewMemoryStore()
	notifier := newStubNotifier()
	svc := NewNewsletterService(store, NewValidator(), notifier, testLogger())

	result, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "x@y.fr"})
	require.NoError(t, err)
	require.False(t, result.EmailSent)

	newsletters, err := store.ListNewsletters(context.Background())
	require.NoError(t, err)
	require.Len(t, newsletters, 1)
}
