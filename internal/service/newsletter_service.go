package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/manon-manin/site-api/internal/dto"
	"github.com/manon-manin/site-api/internal/models"
	"github.com/manon-manin/site-api/internal/observability"
	"github.com/manon-manin/site-api/internal/repository"
)

// NewsletterResult is the outcome of a processed signup. Resubscribing a
// known address yields the existing record with Existing set.
type NewsletterResult struct {
	Subscription models.StoredNewsletter
	Existing     bool
	EmailSent    bool
}

// NewsletterService exposes the newsletter signup workflow.
type NewsletterService interface {
	Subscribe(ctx context.Context, req dto.NewsletterRequest) (NewsletterResult, error)
	List(ctx context.Context) ([]models.StoredNewsletter, error)
}

type newsletterService struct {
	repo      repository.NewsletterRepository
	validator *validator.Validate
	notifier  Notifier
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewNewsletterService constructs a newsletter signup service.
func NewNewsletterService(repo repository.NewsletterRepository, validate *validator.Validate, notifier Notifier, logger zerolog.Logger) NewsletterService {
	return &newsletterService{
		repo:      repo,
		validator: validate,
		notifier:  notifier,
		logger:    logger.With().Str("component", "newsletter_service").Logger(),
		tracer:    otel.Tracer("github.com/manon-manin/site-api/internal/service/newsletter"),
	}
}

// Subscribe validates the payload, saves the subscription through the
// store's dedup rule and sends the welcome email synchronously. A failed
// welcome never fails the signup once data is persisted.
func (s *newsletterService) Subscribe(ctx context.Context, req dto.NewsletterRequest) (NewsletterResult, error) {
	ctx, span := s.tracer.Start(ctx, "newsletter.subscribe")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.NewsletterSignups().WithLabelValues("invalid").Inc()
		return NewsletterResult{}, err
	}

	subscription := models.StoredNewsletter{Email: strings.TrimSpace(req.Email)}

	stored, created, err := s.repo.SaveNewsletter(ctx, subscription)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.NewsletterSignups().WithLabelValues("error").Inc()
		return NewsletterResult{}, err
	}

	existing := !created
	span.SetAttributes(attribute.String("newsletter.id", stored.ID), attribute.Bool("newsletter.existing", existing))

	delivery := s.notifier.SendNewsletterWelcome(ctx, stored)

	outcome := "created"
	if existing {
		outcome = "existing"
	}
	observability.NewsletterSignups().WithLabelValues(outcome).Inc()
	s.logger.Info().
		Str("subscription_id", stored.ID).
		Str("email", maskEmailAddress(stored.Email)).
		Bool("email_sent", delivery.Delivered).
		Bool("existing", existing).
		Msg("newsletter signup processed")
	span.SetStatus(codes.Ok, "accepted")

	return NewsletterResult{Subscription: stored, Existing: existing, EmailSent: delivery.Delivered}, nil
}

// List returns all stored subscriptions, newest first.
func (s *newsletterService) List(ctx context.Context) ([]models.StoredNewsletter, error) {
	return s.repo.ListNewsletters(ctx)
}
