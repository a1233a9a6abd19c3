package dto

import (
	"github.com/manon-manin/site-api/internal/models"
)

// NewsletterRequest defines the expected payload for the newsletter endpoint.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=160"`
}

// NewsletterSubscribeResponse acknowledges a newsletter subscription.
// Resubscribing an already known address returns the existing record's ID.
type NewsletterSubscribeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ID        string `json:"id"`
	EmailSent bool   `json:"emailSent"`
}

// NewsletterListResponse carries the full stored subscription set, newest first.
type NewsletterListResponse struct {
	Success     bool                      `json:"success"`
	Newsletters []models.StoredNewsletter `json:"newsletters"`
}
