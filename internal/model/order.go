package model

// Sentinel placeholder strings some upstream order payloads carry instead of
// leaving a field empty. Renderers treat them as "no value".
const (
	PaymentNotSpecified = "Not specified"
	AddressNotProvided  = "Address not provided"
)

// Order status codes recognised by the status-message table. Unrecognised
// codes pass through verbatim.
const (
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order is the order record an upstream workflow hands to the notifier when a
// confirmation email should go out. Amounts may be string-encoded in the JSON
// payload; Amount and Quantity coerce them.
type Order struct {
	OrderNumber           string     `json:"orderNumber"`
	CustomerName          string     `json:"customerName"`
	CustomerEmail         string     `json:"customerEmail"`
	CustomerPhone         string     `json:"customerPhone,omitempty"`
	PaymentMethod         string     `json:"paymentMethod,omitempty"`
	EstimatedDeliveryDate string     `json:"estimatedDeliveryDate,omitempty"`
	DeliveryAddress       string     `json:"deliveryAddress,omitempty"`
	DeliveryOption        string     `json:"deliveryOption,omitempty"`
	DeliveryDistance      string     `json:"deliveryDistance,omitempty"`
	Items                 []LineItem `json:"items"`
	Subtotal              Amount     `json:"subtotal"`
	DeliveryCharge        Amount     `json:"deliveryCharge"`
	PaymentCharges        Amount     `json:"paymentCharges"`
	DiscountAmount        Amount     `json:"discountAmount"`
	Total                 Amount     `json:"total"`
}

// LineItem is a single ordered product.
type LineItem struct {
	Name        string   `json:"name,omitempty"`
	ProductName string   `json:"productName,omitempty"`
	Quantity    Quantity `json:"quantity"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
}

// DisplayName resolves the item's display name: explicit name, then product
// name, then the literal "Product".
func (i LineItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.ProductName != "" {
		return i.ProductName
	}
	return "Product"
}

// Units returns the quantity, defaulting absent or non-positive values to 1.
func (i LineItem) Units() int {
	if i.Quantity <= 0 {
		return 1
	}
	return int(i.Quantity)
}

// StatusUpdate is the record for an order-status change notification.
type StatusUpdate struct {
	OrderNumber           string     `json:"orderNumber"`
	CustomerName          string     `json:"customerName"`
	CustomerEmail         string     `json:"customerEmail"`
	Status                string     `json:"status"`
	EstimatedDeliveryDate string     `json:"estimatedDeliveryDate,omitempty"`
	DeliveryAddress       string     `json:"deliveryAddress,omitempty"`
	Items                 []LineItem `json:"items"`
	Total                 Amount     `json:"total"`
}
