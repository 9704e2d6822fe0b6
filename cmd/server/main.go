package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ys-perfumes/order-service/internal/config"
	"github.com/ys-perfumes/order-service/internal/handlers"
	"github.com/ys-perfumes/order-service/internal/mailer"
	"github.com/ys-perfumes/order-service/internal/mailer/resend"
	"github.com/ys-perfumes/order-service/internal/server"
	"github.com/ys-perfumes/order-service/internal/service"
	"github.com/ys-perfumes/order-service/internal/templates"
	"github.com/ys-perfumes/order-service/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger, optionally mirrored to Sentry
	log, flush, err := logger.NewWithSentry(cfg.LogLevel, logger.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	}, logger.RequestIDExtractor())
	if err != nil {
		log.Error("sentry disabled", "error", err)
	}
	defer flush()
	slog.SetDefault(log)

	log.Info("starting order service",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Pick the mail transport
	var sender mailer.Sender
	if cfg.Resend.APIKey != "" {
		sender = resend.New(resend.Config{
			APIKey:      cfg.Resend.APIKey,
			SenderEmail: cfg.Resend.FromEmail,
			SenderName:  cfg.Resend.FromName,
		})
		log.Info("order emails delivered via resend", "from", cfg.Resend.FromEmail)
	} else {
		sender = mailer.NewLogSender(log)
		log.Warn("RESEND_API_KEY not set, order emails are only logged")
	}

	// Initialize services
	orderService := service.NewOrderService(sender, mailer.NewRenderer(templates.FS), cfg.Order, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeoutDuration(),
	}, log, orderHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("server failed to start", "error", err)
		flush()
		os.Exit(1)
	case <-quit:
	}

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped gracefully")
}
