package service

import (
	"context"
	"errors"
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

// ErrContactNotFound indicates the requested contact does not exist.
var ErrContactNotFound = errors.New("contact not found")

// ContactResult is the outcome of a processed submission. EmailSent only
// reflects the operator notification; the record is persisted either way.
type ContactResult struct {
	Contact     models.StoredContact
	EmailSent   bool
	PreviewLink string
}

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (ContactResult, error)
	List(ctx context.Context) ([]models.StoredContact, error)
	Get(ctx context.Context, id string) (models.StoredContact, error)
}

type contactService struct {
	repo      repository.ContactRepository
	validator *validator.Validate
	notifier  Notifier
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewContactService constructs a contact submission service.
func NewContactService(repo repository.ContactRepository, validate *validator.Validate, notifier Notifier, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:      repo,
		validator: validate,
		notifier:  notifier,
		logger:    logger.With().Str("component", "contact_service").Logger(),
		tracer:    otel.Tracer("github.com/manon-manin/site-api/internal/service/contact"),
	}
}

// Submit validates the payload, persists it, sends the operator notification
// synchronously and dispatches the visitor confirmation without waiting.
// A failed notification never fails the submission once data is persisted.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (ContactResult, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactSubmissions().WithLabelValues("invalid").Inc()
		return ContactResult{}, err
	}

	contact := models.StoredContact{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Message:     strings.TrimSpace(req.Message),
		SupportType: models.SupportType(req.SupportType),
	}

	stored, err := s.repo.SaveContact(ctx, contact)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		return ContactResult{}, err
	}
	span.SetAttributes(attribute.String("contact.id", stored.ID))

	delivery := s.notifier.SendContactNotification(ctx, stored)

	s.dispatchConfirmation(ctx, stored)

	observability.ContactSubmissions().WithLabelValues("accepted").Inc()
	s.logger.Info().
		Str("contact_id", stored.ID).
		Str("email", maskEmailAddress(stored.Email)).
		Bool("email_sent", delivery.Delivered).
		Msg("contact submission processed")
	span.SetStatus(codes.Ok, "accepted")

	return ContactResult{Contact: stored, EmailSent: delivery.Delivered, PreviewLink: delivery.PreviewLink}, nil
}

// dispatchConfirmation starts the fire-and-forget confirmation leg. The
// detached goroutine owns its error channel: anything it raises is logged
// here and never reaches the response path.
func (s *contactService) dispatchConfirmation(ctx context.Context, contact models.StoredContact) {
	detached := context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Interface("panic", r).Str("contact_id", contact.ID).Msg("confirmation dispatch panicked")
			}
		}()

		if err := s.notifier.SendContactConfirmation(detached, contact); err != nil {
			s.logger.Warn().Err(err).Str("contact_id", contact.ID).Msg("failed to send confirmation")
		}
	}()
}

// List returns all stored contacts, newest first.
func (s *contactService) List(ctx context.Context) ([]models.StoredContact, error) {
	return s.repo.ListContacts(ctx)
}

// Get returns a single stored contact by identifier.
func (s *contactService) Get(ctx context.Context, id string) (models.StoredContact, error) {
	contact, err := s.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.StoredContact{}, ErrContactNotFound
		}
		return models.StoredContact{}, err
	}
	return contact, nil
}
