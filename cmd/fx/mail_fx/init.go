package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"gymflow/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"), // app password if 2FA is enabled
		From:     envOr("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		FromName: envOr("SMTP_FROM_NAME", "GymFlow"),
		UseSSL:   port == 465,

		AppName:    "GymFlow",
		AppBaseURL: envOr("APP_BASE_URL", "http://localhost:5173"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
