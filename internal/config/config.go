package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Navigation modes understood by the server.
const (
	NavigationAnchors = "anchors"
	NavigationHTMX    = "htmx"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetNavigation() string
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr       string `validate:"required"`
	Navigation string `validate:"oneof=anchors htmx"`
	LogFormat  string `validate:"oneof=text json"`
	LogLevel   string `validate:"oneof=debug info warn error"`
}

// New loads configuration from the environment, reading a .env file first if
// one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment.
// Enumerated values are matched case-insensitively.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:       getenv("APP_ADDR", ":8080"),
		Navigation: strings.ToLower(getenv("APP_NAVIGATION", NavigationHTMX)),
		LogFormat:  strings.ToLower(getenv("LOG_FORMAT", "text")),
		LogLevel:   strings.ToLower(getenv("LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) GetAddr() string       { return c.Addr }
func (c *Config) GetNavigation() string { return c.Navigation }
func (c *Config) GetLogFormat() string  { return c.LogFormat }
func (c *Config) GetLogLevel() string   { return c.LogLevel }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
