package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is built once at process start and passed by reference into the
// services; business logic never reads the environment directly.
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"https://www.caldwellfirm.com"`

	// Email Provider Configuration
	EmailAPIKey  string `env:"EMAIL_API_KEY"`
	EmailAPIBase string `env:"EMAIL_API_BASE" envDefault:"https://api.resend.com"`
	EmailDomain  string `env:"EMAIL_DOMAIN" envDefault:"caldwellfirm.com"`

	// SMS Provider Configuration (OAuth2 JWT-bearer flow)
	SMSClientID     string `env:"SMS_CLIENT_ID"`
	SMSClientSecret string `env:"SMS_CLIENT_SECRET"`
	SMSAssertion    string `env:"SMS_JWT_ASSERTION"`
	SMSServerBase   string `env:"SMS_SERVER_BASE"`
	SMSFromNumber   string `env:"SMS_FROM_NUMBER"`

	// Firm Contact Configuration
	FirmIntakeEmail string `env:"FIRM_INTAKE_EMAIL" envDefault:"intake@caldwellfirm.com"`
	FirmPhone       string `env:"FIRM_PHONE" envDefault:"(310) 555-0175"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists; environment-specific files win
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// MissingProviderVars returns the names of provider credentials that are not
// set. A non-empty result means the corresponding delivery channel will fail
// with a configuration error at dispatch time; the server still starts.
func (c *Config) MissingProviderVars() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"EMAIL_API_KEY", c.EmailAPIKey},
		{"SMS_CLIENT_ID", c.SMSClientID},
		{"SMS_CLIENT_SECRET", c.SMSClientSecret},
		{"SMS_JWT_ASSERTION", c.SMSAssertion},
		{"SMS_SERVER_BASE", c.SMSServerBase},
		{"SMS_FROM_NUMBER", c.SMSFromNumber},
	}
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}
