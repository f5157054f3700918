package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment  string
	Port         string
	DatabasePath string

	JWTSecret   string
	TokenExpiry time.Duration

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	SESRegion        string
	SESAccessKeyID   string
	SESSecretKey     string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             os.Getenv("PORT"),
		DatabasePath:     os.Getenv("DATABASE_PATH"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:        os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID:   os.Getenv("AWS_SES_ACCESS_KEY_ID"),
		SESSecretKey:     os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "wellnesscalendar.db"
	}
	if cfg.JWTSecret == "" {
		// Development fallback; production deployments must set JWT_SECRET.
		cfg.JWTSecret = "dev-insecure-secret"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	cfg.TokenExpiry = 24 * time.Hour
	if s := os.Getenv("TOKEN_EXPIRY_HOURS"); s != "" {
		if d, err := time.ParseDuration(s + "h"); err == nil {
			cfg.TokenExpiry = d
		}
	}

	return cfg, nil
}
