package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "LOG_LEVEL", "ORDER_NOTIFY_EMAIL", "SHOP_NAME", "CURRENCY", "RESEND_API_KEY", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT", "SENTRY_RELEASE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "orders@example.com", cfg.Order.NotifyEmail)
	assert.Equal(t, "Y&S Perfumes", cfg.Order.ShopName)
	assert.Equal(t, "EGP", cfg.Order.Currency)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeoutDuration())
	assert.Empty(t, cfg.Resend.APIKey)
	assert.Empty(t, cfg.Sentry.Release)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ORDER_NOTIFY_EMAIL", "shop@perfumes.test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-number")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("RESEND_FROM_EMAIL", "orders@perfumes.test")
	t.Setenv("SENTRY_RELEASE", "order-service@1.4.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "shop@perfumes.test", cfg.Order.NotifyEmail)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, "re_123", cfg.Resend.APIKey)
	assert.Equal(t, "order-service@1.4.0", cfg.Sentry.Release)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Order:    OrderConfig{NotifyEmail: "orders@example.com"},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "PORT is required"},
		{name: "missing recipient", mutate: func(c *Config) { c.Order.NotifyEmail = "" }, wantErr: "ORDER_NOTIFY_EMAIL"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
		{name: "resend without sender", mutate: func(c *Config) { c.Resend.APIKey = "re_123" }, wantErr: "RESEND_FROM_EMAIL"},
		{name: "resend with sender", mutate: func(c *Config) {
			c.Resend.APIKey = "re_123"
			c.Resend.FromEmail = "orders@example.com"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
