package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	ResendAPIKey string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPSecure bool

	MailFrom     string
	MailFromName string
	ContactEmail string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// HasSMTP reports whether a complete set of SMTP credentials is present.
func (c Config) HasSMTP() bool {
	return c.SMTPHost != "" && c.SMTPPort > 0 && c.SMTPUser != "" && c.SMTPPass != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Post-Partum Site API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("mail.from", "noreply@manon-manin.fr")
	v.SetDefault("mail.from_name", "Accompagnement Post-Partum")
	v.SetDefault("contact.email", "contact@manon-manin.fr")

	cfg := Config{
		AppName:      v.GetString("app.name"),
		AppEnv:       v.GetString("app.env"),
		AppPort:      v.GetString("app.port"),
		ResendAPIKey: v.GetString("resend.api_key"),
		SMTPHost:     v.GetString("smtp.host"),
		SMTPPort:     v.GetInt("smtp.port"),
		SMTPUser:     v.GetString("smtp.user"),
		SMTPPass:     v.GetString("smtp.pass"),
		SMTPSecure:   v.GetBool("smtp.secure"),
		MailFrom:     v.GetString("mail.from"),
		MailFromName: v.GetString("mail.from_name"),
		ContactEmail: v.GetString("contact.email"),
	}

	if cfg.SMTPPort < 0 || cfg.SMTPPort > 65535 {
		return Config{}, fmt.Errorf("invalid smtp port: %d", cfg.SMTPPort)
	}

	return cfg, nil
}
