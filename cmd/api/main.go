package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/manon-manin/site-api/internal/config"
	"github.com/manon-manin/site-api/internal/handler"
	"github.com/manon-manin/site-api/internal/mailer"
	"github.com/manon-manin/site-api/internal/middleware"
	"github.com/manon-manin/site-api/internal/repository"
	"github.com/manon-manin/site-api/internal/router"
	"github.com/manon-manin/site-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	transport, err := mailer.Resolve(
		mailer.ResendConfig{
			APIKey:      cfg.ResendAPIKey,
			SenderEmail: cfg.MailFrom,
			SenderName:  cfg.MailFromName,
		},
		mailer.SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUser,
			Password:    cfg.SMTPPass,
			Secure:      cfg.SMTPSecure,
			SenderEmail: cfg.MailFrom,
			SenderName:  cfg.MailFromName,
		},
	)
	if err != nil {
		log.Fatalf("failed to resolve mail transport: %v", err)
	}

	if transport.Configured() {
		logger.Info().Stringer("mode", transport.Mode).Msg("mail transport configured")
	} else {
		logger.Warn().Msg("no mail transport configured - submissions will be stored without notification")
	}

	store := repository.NewMemoryStore()
	validate := service.NewValidator()

	notifier := service.NewNotifier(transport, service.NotifierConfig{
		SenderEmail:   cfg.MailFrom,
		SenderName:    cfg.MailFromName,
		OperatorEmail: cfg.ContactEmail,
	}, logger)

	contactService := service.NewContactService(store, validate, notifier, logger)
	newsletterService := service.NewNewsletterService(store, validate, notifier, logger)

	contactHandler := handler.NewContactHandler(contactService, logger)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:    contactHandler,
		NewsletterHandler: newsletterHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
