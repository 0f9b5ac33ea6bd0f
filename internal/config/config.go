package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DatabaseURL  string
	JWTSecret    string
	Port         string
	Env          string
	CorsOrigin   string
	MailEndpoint string
	MailToken    string
	MailFrom     string
}

// Load reads an optional .env file and then the environment.
// DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		Port:         strings.TrimSpace(os.Getenv("PORT")),
		Env:          strings.ToLower(strings.TrimSpace(os.Getenv("ENV"))),
		CorsOrigin:   strings.TrimSpace(os.Getenv("CORS_ORIGIN")),
		MailEndpoint: strings.TrimSpace(os.Getenv("MAIL_ENDPOINT")),
		MailToken:    strings.TrimSpace(os.Getenv("MAIL_TOKEN")),
		MailFrom:     strings.TrimSpace(os.Getenv("MAIL_FROM")),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = "BudgetApp <admin@budgetapp.com>"
	}

	return cfg, nil
}

// Production reports whether the server runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}
