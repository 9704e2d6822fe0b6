package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Order    OrderConfig
	Resend   ResendConfig
	Sentry   SentryConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RequestTimeout  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// OrderConfig controls who receives order notifications and how they read.
type OrderConfig struct {
	NotifyEmail string
	ShopName    string
	Currency    string
}

// ResendConfig enables real email delivery when APIKey is set.
type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			RequestTimeout:  getEnvAsInt("REQUEST_TIMEOUT", 60),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Order: OrderConfig{
			NotifyEmail: getEnv("ORDER_NOTIFY_EMAIL", "orders@example.com"),
			ShopName:    getEnv("SHOP_NAME", "Y&S Perfumes"),
			Currency:    getEnv("CURRENCY", "EGP"),
		},
		Resend: ResendConfig{
			APIKey:    getEnv("RESEND_API_KEY", ""),
			FromEmail: getEnv("RESEND_FROM_EMAIL", ""),
			FromName:  getEnv("RESEND_FROM_NAME", ""),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
			Release:     getEnv("SENTRY_RELEASE", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	if c.Order.NotifyEmail == "" {
		return errors.New("ORDER_NOTIFY_EMAIL is required")
	}

	if c.Resend.APIKey != "" && c.Resend.FromEmail == "" {
		return errors.New("RESEND_FROM_EMAIL is required when RESEND_API_KEY is set")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the host:port pair the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

func (s ServerConfig) ReadTimeoutDuration() time.Duration     { return seconds(s.ReadTimeout) }
func (s ServerConfig) WriteTimeoutDuration() time.Duration    { return seconds(s.WriteTimeout) }
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration { return seconds(s.ShutdownTimeout) }
func (s ServerConfig) RequestTimeoutDuration() time.Duration  { return seconds(s.RequestTimeout) }

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
