// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Firebase Configuration
	FirebaseServiceAccountKeyPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseProjectID             string `mapstructure:"FIREBASE_PROJECT_ID"`

	// Mail Delivery Configuration (SendGrid SMTP relay)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SENDGRID_USERNAME"`
	SMTPPassword string `mapstructure:"SENDGRID_PASS"`

	// Sender identity for every outbound email.
	SenderName    string `mapstructure:"EMAIL_SENDER_NAME"`
	SenderAddress string `mapstructure:"EMAIL_AUTOMATED"`

	// Directory holding the notification templates.
	TemplatesDir string `mapstructure:"TEMPLATES_DIR"`
}

// Load attempts to load configuration from a .env file (if present) and
// environment variables. An explicit env file path may be passed for tests.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("FIREBASE_PROJECT_ID", "") // Optional
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")

	v.SetDefault("SMTP_HOST", "smtp.sendgrid.net")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SENDGRID_USERNAME", "")
	v.SetDefault("SENDGRID_PASS", "")

	v.SetDefault("EMAIL_SENDER_NAME", "Bookinesia")
	v.SetDefault("EMAIL_AUTOMATED", "")

	v.SetDefault("TEMPLATES_DIR", "templates")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.FirebaseServiceAccountKeyPath) == "" {
		return nil, fmt.Errorf("FATAL: FIREBASE_SERVICE_ACCOUNT_KEY_PATH is not set. This is required for Firebase Admin SDK initialization")
	}
	if _, err := os.Stat(cfg.FirebaseServiceAccountKeyPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("FATAL: Firebase service account key file specified in FIREBASE_SERVICE_ACCOUNT_KEY_PATH (%s) not found", cfg.FirebaseServiceAccountKeyPath)
	}
	if strings.TrimSpace(cfg.SMTPUsername) == "" || strings.TrimSpace(cfg.SMTPPassword) == "" {
		return nil, fmt.Errorf("FATAL: SENDGRID_USERNAME and SENDGRID_PASS are required for mail delivery")
	}
	if strings.TrimSpace(cfg.SenderAddress) == "" {
		return nil, fmt.Errorf("FATAL: EMAIL_AUTOMATED (automated sender address) is not set")
	}

	return &cfg, nil
}
