package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ys-perfumes/order-service/internal/config"
	"github.com/ys-perfumes/order-service/internal/mailer"
	"github.com/ys-perfumes/order-service/internal/models"
	"github.com/ys-perfumes/order-service/internal/templates"
)

const orderDateLayout = "2006-01-02 15:04:05"

var (
	ErrInvalidOrder = errors.New("invalid order data")
	ErrEmptyOrder   = errors.New("no items in order")
	ErrSendFailed   = errors.New("failed to send order email")
)

// MissingFieldError reports a required customer field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// OrderService validates order submissions and notifies the shop by email
type OrderService struct {
	sender   mailer.Sender
	renderer *mailer.Renderer
	cfg      config.OrderConfig
	log      *slog.Logger
	now      func() time.Time
	newRef   func() string
}

// Option customizes an OrderService.
type Option func(*OrderService)

// WithClock overrides the time source used for the order date.
func WithClock(now func() time.Time) Option {
	return func(s *OrderService) { s.now = now }
}

// WithReferenceGenerator overrides how order references are generated.
func WithReferenceGenerator(gen func() string) Option {
	return func(s *OrderService) { s.newRef = gen }
}

// NewOrderService creates a new order service
func NewOrderService(sender mailer.Sender, renderer *mailer.Renderer, cfg config.OrderConfig, log *slog.Logger, opts ...Option) *OrderService {
	s := &OrderService{
		sender:   sender,
		renderer: renderer,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		newRef:   generateOrderReference,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitOrder validates the request, renders the order summary and hands it
// to the sender. Validation failures return ErrInvalidOrder, ErrEmptyOrder
// or a *MissingFieldError; delivery failures wrap ErrSendFailed.
func (s *OrderService) SubmitOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := ValidateOrder(req); err != nil {
		return nil, err
	}

	order := &models.Order{
		Reference:   s.newRef(),
		SubmittedAt: s.now(),
		Customer:    *req.Customer,
		Items:       *req.Items,
		Total:       req.Total,
	}

	email, err := s.buildEmail(order)
	if err != nil {
		return nil, fmt.Errorf("build order email: %w", err)
	}

	if err := s.sender.Send(ctx, email); err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}

	s.log.InfoContext(ctx, "order submitted",
		"order_reference", order.Reference,
		"items_count", len(order.Items),
		"total", order.Total.String(),
	)

	return order, nil
}

// ValidateOrder checks field presence only. Prices and quantities are not
// bounds checked.
func ValidateOrder(req models.OrderRequest) error {
	if req.Customer == nil || req.Items == nil {
		return ErrInvalidOrder
	}

	c := req.Customer
	required := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if len(*req.Items) == 0 {
		return ErrEmptyOrder
	}

	return nil
}

type notificationData struct {
	Shop     string
	Currency string
	Date     string
	Customer models.Customer
	Items    []models.OrderItem
	Total    decimal.Decimal
}

func (s *OrderService) buildEmail(order *models.Order) (*mailer.Email, error) {
	rendered, err := s.renderer.Render(templates.OrderNotification, notificationData{
		Shop:     s.cfg.ShopName,
		Currency: s.cfg.Currency,
		Date:     order.SubmittedAt.Format(orderDateLayout),
		Customer: order.Customer,
		Items:    order.Items,
		Total:    order.Total,
	})
	if err != nil {
		return nil, err
	}

	return &mailer.Email{
		From:    order.Customer.Email,
		ReplyTo: order.Customer.Email,
		To:      []string{s.cfg.NotifyEmail},
		Subject: rendered.Subject,
		Text:    rendered.Text,
		Headers: map[string]string{"X-Order-Reference": order.Reference},
		Tags:    map[string]string{"type": "order", "order_reference": order.Reference},
	}, nil
}

// generateOrderReference generates a unique order reference using UUID
func generateOrderReference() string {
	return uuid.New().String()
}
