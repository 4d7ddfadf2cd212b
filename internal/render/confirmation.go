package render

import (
	"fmt"
	htmltemplate "html/template"

	"github.com/bloombasket/notifier/internal/model"
)

type itemView struct {
	Name        string
	Quantity    int
	ImageURL    string
	Description string
	Color       string
}

// confirmationView carries only display-ready strings; empty means "omit".
type confirmationView struct {
	OrderNumber       string
	CustomerName      string
	Phone             string
	PaymentMethod     string
	DeliveryOption    string
	DeliveryDistance  string
	Items             []itemView
	Subtotal          string
	DeliveryCharge    string
	PaymentCharges    string
	Discount          string
	Total             string
	EstimatedDelivery string
	DeliveryAddress   string
	QRCode            htmltemplate.URL
}

func newConfirmationView(o model.Order, includeQR bool) confirmationView {
	view := confirmationView{
		OrderNumber:      o.OrderNumber,
		CustomerName:     o.CustomerName,
		Phone:            o.CustomerPhone,
		DeliveryOption:   o.DeliveryOption,
		DeliveryDistance: o.DeliveryDistance,
		Subtotal:         Money(o.Subtotal.Float()),
		Total:            Money(o.Total.Float()),
	}
	if o.PaymentMethod != "" && o.PaymentMethod != model.PaymentNotSpecified {
		view.PaymentMethod = o.PaymentMethod
	}
	if o.DeliveryAddress != "" && o.DeliveryAddress != model.AddressNotProvided {
		view.DeliveryAddress = o.DeliveryAddress
	}
	if o.EstimatedDeliveryDate != "" {
		view.EstimatedDelivery = DeliveryDate(o.EstimatedDeliveryDate)
	}
	// Charges below zero or at zero are not shown; a zero delivery charge
	// means free delivery, not a ₹0 line.
	if o.DeliveryCharge.Positive() {
		view.DeliveryCharge = Money(o.DeliveryCharge.Float())
	}
	if o.PaymentCharges.Positive() {
		view.PaymentCharges = Money(o.PaymentCharges.Float())
	}
	if o.DiscountAmount.Positive() {
		view.Discount = Money(o.DiscountAmount.Float())
	}
	for _, item := range o.Items {
		view.Items = append(view.Items, itemView{
			Name:        item.DisplayName(),
			Quantity:    item.Units(),
			ImageURL:    item.ImageURL,
			Description: item.Description,
			Color:       item.Color,
		})
	}
	if includeQR && o.OrderNumber != "" {
		view.QRCode = qrDataURI(o.OrderNumber)
	}
	return view
}

// Confirmation renders the order-confirmation email for a placed order.
func (r Renderer) Confirmation(o model.Order) (Message, error) {
	view := newConfirmationView(o, r.IncludeQR)

	html, err := executeHTML(confirmationHTML, view)
	if err != nil {
		return Message{}, err
	}
	text, err := executeText(confirmationText, view)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Subject: fmt.Sprintf("Order Confirmation - %s", o.OrderNumber),
		HTML:    html,
		Text:    text,
	}, nil
}
