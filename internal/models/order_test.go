package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItem_Subtotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price    string
		quantity string
		want     string
	}{
		{"150", "2", "300"},
		{"0.1", "3", "0.3"},
		{"99.5", "0", "0"},
		{"-10", "2", "-20"},
		{"100", "1.5", "150"},
		{"75", "2e0", "150"},
	}

	for _, tt := range tests {
		item := OrderItem{Price: decimal.RequireFromString(tt.price), Quantity: decimal.RequireFromString(tt.quantity)}
		assert.Equal(t, tt.want, item.Subtotal().String(), "%s x %s", tt.price, tt.quantity)
	}
}

func TestOrderRequest_Decode(t *testing.T) {
	t.Parallel()

	t.Run("numbers and numeric strings", func(t *testing.T) {
		t.Parallel()

		var req OrderRequest
		err := json.Unmarshal([]byte(`{
			"customer": {"name": "Jane", "email": "j@x.test", "phone": "1", "address": "a"},
			"items": [
				{"name": "Oud", "size": "50ml", "price": "150.50", "quantity": 2},
				{"name": "Musk", "size": "10ml", "price": 100, "quantity": 1.5},
				{"name": "Amber", "size": "5ml", "price": 75, "quantity": 2e0}
			],
			"total": 301
		}`), &req)
		require.NoError(t, err)

		require.NotNil(t, req.Customer)
		require.NotNil(t, req.Items)
		assert.Equal(t, "301", req.Total.String())
		items := *req.Items
		require.Len(t, items, 3)
		assert.Equal(t, "301", items[0].Subtotal().String())
		assert.Equal(t, "150", items[1].Subtotal().String())
		assert.Equal(t, "150", items[2].Subtotal().String())
	})

	t.Run("null keys stay nil", func(t *testing.T) {
		t.Parallel()

		var req OrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"customer": null, "items": null}`), &req))
		assert.Nil(t, req.Customer)
		assert.Nil(t, req.Items)
	})

	t.Run("absent keys stay nil", func(t *testing.T) {
		t.Parallel()

		var req OrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"items": []}`), &req))
		assert.Nil(t, req.Customer)
		require.NotNil(t, req.Items)
		assert.Empty(t, *req.Items)
		assert.True(t, req.Total.IsZero())
	})
}
