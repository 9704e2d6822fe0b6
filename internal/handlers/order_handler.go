package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ys-perfumes/order-service/internal/models"
	"github.com/ys-perfumes/order-service/internal/service"
)

var errTrailingData = errors.New("request body must contain a single JSON value")

const (
	msgOrderSubmitted = "Order submitted successfully!"
	msgInvalidOrder   = "Invalid order data"
	msgNoItems        = "No items in order"
	msgSendFailed     = "Failed to send order email"
	msgInternalError  = "Internal server error"
)

// maxOrderBodyBytes bounds the request body size.
const maxOrderBodyBytes = 1 << 20

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// SubmitOrder handles POST /submit-order
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	// Parse request body
	if err := decodeJSONBody(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes), &req); err != nil {
		h.log.WarnContext(r.Context(), "failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, msgInvalidOrder, h.log)
		return
	}

	if _, err := h.orderService.SubmitOrder(r.Context(), req); err != nil {
		var missing *service.MissingFieldError

		switch {
		case errors.As(err, &missing):
			h.log.WarnContext(r.Context(), "order rejected", "missing_field", missing.Field)
			WriteError(w, http.StatusBadRequest, "Missing required field: "+missing.Field, h.log)
		case errors.Is(err, service.ErrInvalidOrder):
			h.log.WarnContext(r.Context(), "order rejected", "error", err)
			WriteError(w, http.StatusBadRequest, msgInvalidOrder, h.log)
		case errors.Is(err, service.ErrEmptyOrder):
			h.log.WarnContext(r.Context(), "order rejected", "error", err)
			WriteError(w, http.StatusBadRequest, msgNoItems, h.log)
		case errors.Is(err, service.ErrSendFailed):
			h.log.ErrorContext(r.Context(), "failed to send order email", "error", err)
			WriteError(w, http.StatusInternalServerError, msgSendFailed, h.log)
		default:
			h.log.ErrorContext(r.Context(), "error processing order", "error", err)
			WriteError(w, http.StatusInternalServerError, msgInternalError, h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: msgOrderSubmitted}, h.log)
}

// decodeJSONBody decodes exactly one JSON value from body into v.
// Anything after that value other than whitespace is an error.
func decodeJSONBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
