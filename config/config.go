// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/seo-optimizer/audit-api/openai"
	"github.com/seo-optimizer/audit-api/serpapi"
)

type Config struct {
	SearchAPIKey      string
	CompletionAPIKey  string
	SearchBaseURL     string
	CompletionBaseURL string
	CompletionModel   string
	HTTPTimeout       time.Duration
	Port              string
	GinMode           string
	LogLevel          string
	LogFormat         string
}

// LoadEnv reads .env.development, falling back to .env. Variables already set in
// the process environment are not overwritten.
func LoadEnv() {
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file found, using environment variables")
		}
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	LoadEnv()

	cfg := &Config{
		SearchAPIKey:      os.Getenv("SERPAPI_KEY"),
		CompletionAPIKey:  os.Getenv("OPENAI_API_KEY"),
		SearchBaseURL:     getEnv("SERPAPI_BASE_URL", serpapi.DefaultBaseURL),
		CompletionBaseURL: getEnv("OPENAI_BASE_URL", openai.DefaultBaseURL),
		CompletionModel:   getEnv("OPENAI_MODEL", openai.DefaultModel),
		Port:              getEnv("PORT", "8000"),
		GinMode:           getEnv("GIN_MODE", gin.ReleaseMode),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that both API keys are present and the remaining fields are usable.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.SearchAPIKey) == "" {
		errs = append(errs, errors.New("SERPAPI_KEY is required"))
	}
	if strings.TrimSpace(c.CompletionAPIKey) == "" {
		errs = append(errs, errors.New("OPENAI_API_KEY is required"))
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must not be negative"))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("unknown GIN_MODE %q", c.GinMode))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
