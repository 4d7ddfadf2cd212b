package render

import (
	"fmt"

	"github.com/bloombasket/notifier/internal/model"
)

// StatusMessage returns the customer-facing sentence for an order status.
// Unrecognised codes fall through to a generic line carrying the raw status,
// so this is total over strings.
func StatusMessage(status string) string {
	switch status {
	case model.StatusConfirmed:
		return "Your order has been confirmed and is being prepared."
	case model.StatusProcessing:
		return "Your order is being processed and will be dispatched soon."
	case model.StatusShipped:
		return "Your order has been shipped and is on its way to you."
	case model.StatusDelivered:
		return "Your order has been delivered. We hope you love it!"
	case model.StatusCancelled:
		return "Your order has been cancelled. If this was unexpected, please contact us."
	default:
		return fmt.Sprintf("Order status: %s", status)
	}
}
