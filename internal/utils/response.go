package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the common envelope for failed requests. Errors carries
// the field-level violation list on validation failures and is omitted
// otherwise.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Message: message,
	})
}

// SendValidationError sends a 400 response carrying the violation list.
func SendValidationError(c *fiber.Ctx, message string, errs interface{}) error {
	if message == "" {
		message = "invalid payload"
	}

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
