package model

import "time"

// Delivery kinds recorded in the delivery log.
const (
	DeliveryKindConfirmation = "confirmation"
	DeliveryKindStatusUpdate = "status_update"
	DeliveryKindTest         = "test"
)

// Delivery is one send attempt against the email transport.
type Delivery struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Kind        string    `json:"kind"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Delivered   bool      `json:"delivered"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
