package model

import (
	"encoding/json"
	"testing"
)

func TestOrderDecodeCoercesAmounts(t *testing.T) {
	payload := `{
		"orderNumber": "BB-42",
		"subtotal": "500",
		"deliveryCharge": 150,
		"paymentCharges": "12.5",
		"discountAmount": "not a number",
		"total": 662.5,
		"items": [{"name": "Rose Bouquet", "quantity": "2"}]
	}`

	var order Order
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if order.Subtotal != 500 {
		t.Errorf("subtotal = %v, want 500", order.Subtotal)
	}
	if order.DeliveryCharge != 150 {
		t.Errorf("deliveryCharge = %v, want 150", order.DeliveryCharge)
	}
	if order.PaymentCharges != 12.5 {
		t.Errorf("paymentCharges = %v, want 12.5", order.PaymentCharges)
	}
	if order.DiscountAmount != 0 {
		t.Errorf("discountAmount = %v, want 0 for unparsable input", order.DiscountAmount)
	}
	if order.Total != 662.5 {
		t.Errorf("total = %v, want 662.5", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Units() != 2 {
		t.Errorf("items = %+v, want one item with 2 units", order.Items)
	}
}

func TestLineItemDisplayName(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want string
	}{
		{"explicit name wins", LineItem{Name: "Rose Bouquet", ProductName: "SKU-1"}, "Rose Bouquet"},
		{"product name second", LineItem{ProductName: "Tulip Bunch"}, "Tulip Bunch"},
		{"literal fallback", LineItem{}, "Product"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineItemUnits(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want int
	}{
		{"explicit quantity", LineItem{Quantity: 3}, 3},
		{"absent defaults to one", LineItem{}, 1},
		{"negative defaults to one", LineItem{Quantity: -2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Units(); got != tt.want {
				t.Errorf("Units() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuantityDecodeTolerant(t *testing.T) {
	var item LineItem
	if err := json.Unmarshal([]byte(`{"quantity": "lots"}`), &item); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("quantity = %d, want 0 for unparsable input", item.Quantity)
	}
	if item.Units() != 1 {
		t.Errorf("Units() = %d, want 1", item.Units())
	}
}
