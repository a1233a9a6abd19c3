package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/manon-manin/site-api/internal/dto"
	"github.com/manon-manin/site-api/internal/service"
)

func TestNewsletterSubscribeEndpointIdempotentByEmail(t *testing.T) {
	notifier := &recordingNotifier{welcome: service.DeliveryResult{Delivered: true}}
	app := newTestApp(notifier)

	first := postJSON(t, app, "/api/newsletter", map[string]string{"email": "x@y.fr"})
	require.Equal(t, fiber.StatusOK, first.StatusCode)
	var firstResponse dto.NewsletterSubscribeResponse
	decodeResponse(t, first, &firstResponse)
	require.True(t, firstResponse.Success)
	require.Equal(t, "Merci de vous être inscrit à notre newsletter !", firstResponse.Message)
	require.NotEmpty(t, firstResponse.ID)
	require.True(t, firstResponse.EmailSent)

	second := postJSON(t, app, "/api/newsletter", map[string]string{"email": "x@y.fr"})
	require.Equal(t, fiber.StatusOK, second.StatusCode)
	var secondResponse dto.NewsletterSubscribeResponse
	decodeResponse(t, second, &secondResponse)
	require.Equal(t, firstResponse.ID, secondResponse.ID)
}

func TestNewsletterSubscribeEndpointValidationFailure(t *testing.T) {
	app := newTestApp(&recordingNotifier{})

	resp := postJSON(t, app, "/api/newsletter", map[string]string{"email": "not-an-email"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var response struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Errors  []dto.FieldError `json:"errors"`
	}
	decodeResponse(t, resp, &response)
	require.False(t, response.Success)
	require.Equal(t, "email", response.Errors[0].Field)
	require.Equal(t, "Email invalide", response.Errors[0].Message)
}

func TestNewsletterListEndpoint(t *testing.T) {
	app := newTestApp(&recordingNotifier{})

	resp := postJSON(t, app, "/api/newsletter", map[string]string{"email": "x@y.fr"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/newsletters", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var listResponse dto.NewsletterListResponse
	decodeResponse(t, listResp, &listResponse)
	require.True(t, listResponse.Success)
	require.Len(t, listResponse.Newsletters, 1)
	require.Equal(t, "x@y.fr", listResponse.Newsletters[0].Email)
}
