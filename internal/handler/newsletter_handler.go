package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/manon-manin/site-api/internal/dto"
	"github.com/manon-manin/site-api/internal/service"
	"github.com/manon-manin/site-api/internal/utils"
)

// NewsletterHandler handles the newsletter signup endpoints.
type NewsletterHandler struct {
	service service.NewsletterService
	logger  zerolog.Logger
}

// NewNewsletterHandler constructs a newsletter handler.
func NewNewsletterHandler(service service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		logger:  logger.With().Str("component", "newsletter_handler").Logger(),
	}
}

// Register wires newsletter routes.
func (h *NewsletterHandler) Register(router fiber.Router) {
	router.Post("/newsletter", h.subscribe)
	router.Get("/newsletters", h.list)
}

func (h *NewsletterHandler) subscribe(c *fiber.Ctx) error {
	var payload dto.NewsletterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidPayload)
	}

	result, err := h.service.Subscribe(c.Context(), payload)
	if err != nil {
		var violations validator.ValidationErrors
		if errors.As(err, &violations) {
			return utils.SendValidationError(c, msgInvalidPayload, fieldErrors(violations))
		}
		h.logger.Error().Err(err).Msg("failed to process newsletter signup")
		return utils.SendError(c, fiber.StatusInternalServerError, msgServerError)
	}

	return c.JSON(dto.NewsletterSubscribeResponse{
		Success:   true,
		Message:   msgNewsletterWelcome,
		ID:        result.Subscription.ID,
		EmailSent: result.EmailSent,
	})
}

func (h *NewsletterHandler) list(c *fiber.Ctx) error {
	newsletters, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list newsletter subscriptions")
		return utils.SendError(c, fiber.StatusInternalServerError, msgListError)
	}

	return c.JSON(dto.NewsletterListResponse{Success: true, Newsletters: newsletters})
}
