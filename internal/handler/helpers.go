package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/manon-manin/site-api/internal/dto"
)

// Response copy matches the site's French UI.
const (
	msgInvalidPayload    = "Données invalides"
	msgServerError       = "Une erreur est survenue. Veuillez réessayer."
	msgListError         = "Une erreur est survenue"
	msgContactAccepted   = "Votre message a été envoyé avec succès !"
	msgNewsletterWelcome = "Merci de vous être inscrit à notre newsletter !"
)

// fieldErrors turns validator violations into the wire-level error list.
func fieldErrors(errs validator.ValidationErrors) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "max" {
			return "Le nom est trop long"
		}
		return "Le nom doit contenir au moins 2 caractères"
	case "email":
		return "Email invalide"
	case "message":
		if fe.Tag() == "max" {
			return "Le message est trop long"
		}
		return "Le message doit contenir au moins 10 caractères"
	case "supportType":
		return "Type d'accompagnement invalide"
	case "phone":
		return "Numéro de téléphone invalide"
	}
	return fmt.Sprintf("Champ %s invalide", fe.Field())
}
