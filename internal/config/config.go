// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Provider selection: "zeptomail" or "smtp"
	EmailProvider string
	SendTimeout   time.Duration

	// ZeptoMail
	ZeptoMailURL    string
	ZeptoMailAPIKey string

	// Sender identity
	FromEmail string
	FromName  string

	// SMTP
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Resources
	TemplatePath string
	StaticDir    string

	// Logging
	LogFile  string
	LogLevel string

	// CORS
	AllowedOrigins string
}

func Load() *Config {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load() // optional .env for local
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("❌ Invalid SMTP_PORT: %v", err)
	}

	timeout, err := time.ParseDuration(getEnv("SEND_TIMEOUT", "30s"))
	if err != nil {
		log.Fatalf("❌ Invalid SEND_TIMEOUT: %v", err)
	}

	return &Config{
		ServerPort: getEnv("PORT", "5000"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "zeptomail"),
		SendTimeout:   timeout,

		ZeptoMailURL:    getEnv("ZEPTOMAIL_URL", "https://api.zeptomail.com/v1.1/email"),
		ZeptoMailAPIKey: os.Getenv("ZEPTOMAIL_API_KEY"),

		FromEmail: getEnv("FROM_EMAIL", "registration@chayannito26.com"),
		FromName:  getEnv("FROM_NAME", "Chayannito 26 Registration"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: smtpPort,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		TemplatePath: getEnv("EMAIL_TEMPLATE_PATH", "email_template.html"),
		StaticDir:    getEnv("STATIC_DIR", "public"),

		LogFile:  getEnv("LOG_FILE", "email_server.log"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
