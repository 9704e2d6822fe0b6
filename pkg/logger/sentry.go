package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures error reporting.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// NewWithSentry returns a stdout JSON logger that also ships warnings and
// errors to Sentry. Error records become Sentry issues. With an empty DSN
// it is a plain stdout logger. The returned flush func must be called before exit.
func NewWithSentry(level string, cfg SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func(), error) {
	return newWithSentry(os.Stdout, level, cfg, extractors...)
}

func newWithSentry(w io.Writer, level string, cfg SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func(), error) {
	noop := func() {}

	if cfg.DSN == "" {
		return NewWithWriter(w, level, extractors...), noop, nil
	}

	stdout := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		return slog.New(NewContextHandler(stdout, extractors...)), noop, fmt.Errorf("sentry init: %w", err)
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	flush := func() { sentry.Flush(2 * time.Second) }

	return slog.New(NewContextHandler(fanoutHandler{stdout, sentryHandler}, extractors...)), flush, nil
}
