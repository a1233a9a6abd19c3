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

// ContactHandler handles the contact form endpoints.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("/contact", h.submit)
	router.Get("/contacts", h.list)
	router.Get("/contacts/:id", h.get)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidPayload)
	}

	result, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		var violations validator.ValidationErrors
		if errors.As(err, &violations) {
			return utils.SendValidationError(c, msgInvalidPayload, fieldErrors(violations))
		}
		h.logger.Error().Err(err).Msg("failed to process contact submission")
		return utils.SendError(c, fiber.StatusInternalServerError, msgServerError)
	}

	return c.JSON(dto.ContactSubmitResponse{
		Success:     true,
		Message:     msgContactAccepted,
		ID:          result.Contact.ID,
		EmailSent:   result.EmailSent,
		PreviewLink: result.PreviewLink,
	})
}

func (h *ContactHandler) list(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list contacts")
		return utils.SendError(c, fiber.StatusInternalServerError, msgListError)
	}

	return c.JSON(dto.ContactListResponse{Success: true, Contacts: contacts})
}

func (h *ContactHandler) get(c *fiber.Ctx) error {
	contact, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Contact introuvable")
		}
		h.logger.Error().Err(err).Str("contact_id", c.Params("id")).Msg("failed to fetch contact")
		return utils.SendError(c, fiber.StatusInternalServerError, msgListError)
	}

	return c.JSON(dto.ContactGetResponse{Success: true, Contact: contact})
}
