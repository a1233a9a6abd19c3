package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manon-manin/site-api/internal/config"
	"github.com/manon-manin/site-api/internal/handler"
	"github.com/manon-manin/site-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler    *handler.ContactHandler
	NewsletterHandler *handler.NewsletterHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api)
	}

	if deps.NewsletterHandler != nil {
		deps.NewsletterHandler.Register(api)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
