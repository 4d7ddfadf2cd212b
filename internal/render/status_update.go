package render

import (
	"fmt"

	"github.com/bloombasket/notifier/internal/model"
)

type statusView struct {
	OrderNumber       string
	CustomerName      string
	Status            string
	StatusMessage     string
	Items             []itemView
	EstimatedDelivery string
	DeliveryAddress   string
	Total             string
}

func newStatusView(u model.StatusUpdate) statusView {
	view := statusView{
		OrderNumber:     u.OrderNumber,
		CustomerName:    u.CustomerName,
		Status:          u.Status,
		StatusMessage:   StatusMessage(u.Status),
		DeliveryAddress: u.DeliveryAddress,
		Total:           Money(u.Total.Float()),
	}
	if u.EstimatedDeliveryDate != "" {
		view.EstimatedDelivery = DeliveryDate(u.EstimatedDeliveryDate)
	}
	for _, item := range u.Items {
		// Status payloads carry the catalogue product name first.
		name := item.ProductName
		if name == "" {
			name = item.Name
		}
		if name == "" {
			name = "Product"
		}
		view.Items = append(view.Items, itemView{Name: name, Quantity: item.Units()})
	}
	return view
}

// StatusUpdate renders the order-status-change email.
func (r Renderer) StatusUpdate(u model.StatusUpdate) (Message, error) {
	view := newStatusView(u)

	html, err := executeHTML(statusHTML, view)
	if err != nil {
		return Message{}, err
	}
	text, err := executeText(statusText, view)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Subject: fmt.Sprintf("Order %s Status Update: %s", u.OrderNumber, u.Status),
		HTML:    html,
		Text:    text,
	}, nil
}
