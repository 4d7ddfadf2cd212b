package render

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole amount has no decimals", 150, "₹150"},
		{"thousands separator", 1500, "₹1,500"},
		{"fractional amount keeps decimals", 99.5, "₹99.5"},
		{"two decimal places", 1234.56, "₹1,234.56"},
		{"zero", 0, "₹0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Money(tt.amount); got != tt.want {
				t.Errorf("Money(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestDeliveryDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ISO date", "2025-03-05", "5 March 2025"},
		{"slash date", "2025/12/25", "25 December 2025"},
		{"unparsable renders verbatim", "whenever the van arrives", "whenever the van arrives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeliveryDate(tt.raw); got != tt.want {
				t.Errorf("DeliveryDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
