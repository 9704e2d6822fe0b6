package logger

import (
	"context"
	"log/slog"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ContextExtractor pulls a single attribute out of a request context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// RequestIDExtractor adds the chi request id, when present, as "request_id".
func RequestIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := chimiddleware.GetReqID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}

// contextHandler runs the extractors on every record so request-scoped
// values are picked up at log time rather than at logger construction.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the given extractors. Nil extractors are dropped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
