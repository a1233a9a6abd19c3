package models

import "time"

// SupportType enumerates the kinds of accompaniment a visitor can ask about.
type SupportType string

const (
	SupportPostpartum SupportType = "postpartum"
	SupportPregnancy  SupportType = "pregnancy"
	SupportOther      SupportType = "other"
)

// Label returns the display label used in outbound emails. An empty
// support type renders as "Non spécifié".
func (s SupportType) Label() string {
	switch s {
	case SupportPostpartum:
		return "Post-Partum"
	case SupportPregnancy:
		return "Grossesse"
	case SupportOther:
		return "Autre"
	default:
		return "Non spécifié"
	}
}

// StoredContact is a contact form submission as persisted by the store.
// Records are immutable once inserted and live for the process lifetime.
type StoredContact struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Message     string      `json:"message"`
	SupportType SupportType `json:"supportType,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// StoredNewsletter is a newsletter subscription as persisted by the store.
// Emails are unique case-insensitively across all stored subscriptions.
type StoredNewsletter struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
