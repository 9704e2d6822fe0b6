// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ys-perfumes/order-service/internal/handlers"
	"github.com/ys-perfumes/order-service/internal/middleware"
)

// RouterConfig holds the router-level knobs.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the service router.
func NewRouter(cfg RouterConfig, log *slog.Logger, orders *handlers.OrderHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}

	// The storefront posts orders from the browser
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "Not found", log)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", log)
	})

	r.Get("/health", health.ServeHTTP)
	r.Post("/submit-order", orders.SubmitOrder)

	return r
}
