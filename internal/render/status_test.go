package render

import "testing"

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"confirmed", "Your order has been confirmed and is being prepared."},
		{"processing", "Your order is being processed and will be dispatched soon."},
		{"shipped", "Your order has been shipped and is on its way to you."},
		{"delivered", "Your order has been delivered. We hope you love it!"},
		{"cancelled", "Your order has been cancelled. If this was unexpected, please contact us."},
		{"on_hold", "Order status: on_hold"},
		{"", "Order status: "},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := StatusMessage(tt.status); got != tt.want {
				t.Errorf("StatusMessage(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}
