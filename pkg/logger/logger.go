// Package logger builds the service's structured slog loggers.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// NewWithWriter creates a JSON logger writing to w at the given level
// ("debug", "info", "warn" or "error"). Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(NewContextHandler(h, extractors...))
}

// NewNope creates a logger that discards everything. Handy in tests.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
