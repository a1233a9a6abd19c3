package dto

import (
	"github.com/manon-manin/site-api/internal/models"
)

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email,max=160"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
	SupportType string `json:"supportType" validate:"omitempty,oneof=postpartum pregnancy other"`
}

// ContactSubmitResponse acknowledges a processed contact submission.
// EmailSent reflects the outcome of the synchronous operator notification
// only; the submission itself succeeded whenever Success is true.
type ContactSubmitResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ID          string `json:"id"`
	EmailSent   bool   `json:"emailSent"`
	PreviewLink string `json:"previewLink,omitempty"`
}

// ContactListResponse carries the full stored contact set, newest first.
type ContactListResponse struct {
	Success  bool                   `json:"success"`
	Contacts []models.StoredContact `json:"contacts"`
}

// ContactGetResponse carries a single stored contact.
type ContactGetResponse struct {
	Success bool                 `json:"success"`
	Contact models.StoredContact `json:"contact"`
}
