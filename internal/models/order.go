package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest represents an incoming order submission from the storefront.
// Customer and Items are pointers so that absent keys can be told apart
// from empty values.
type OrderRequest struct {
	Customer *Customer       `json:"customer"`
	Items    *[]OrderItem    `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

// Customer holds the contact details the shop needs to confirm an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// OrderItem represents a single line in an order
type OrderItem struct {
	Name     string          `json:"name"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Subtotal returns price x quantity. Neither value is bounds checked, and
// quantity may be fractional.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}

// Order represents an accepted order. It only lives for the duration of
// the request and is never persisted.
type Order struct {
	Reference   string
	SubmittedAt time.Time
	Customer    Customer
	Items       []OrderItem
	Total       decimal.Decimal
}
