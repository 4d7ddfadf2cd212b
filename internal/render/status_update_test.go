package render

import (
	"strings"
	"testing"

	"github.com/bloombasket/notifier/internal/model"
)

func baseUpdate() model.StatusUpdate {
	return model.StatusUpdate{
		OrderNumber:   "BB-7",
		CustomerName:  "Asha",
		CustomerEmail: "a@x.com",
		Status:        model.StatusShipped,
		Items:         []model.LineItem{{ProductName: "Rose Bouquet", Quantity: 2}},
		Total:         500,
	}
}

func TestStatusUpdateSubjectAndMessage(t *testing.T) {
	msg, err := Renderer{}.StatusUpdate(baseUpdate())
	if err != nil {
		t.Fatalf("StatusUpdate() error: %v", err)
	}

	if msg.Subject != "Order BB-7 Status Update: shipped" {
		t.Errorf("subject = %q", msg.Subject)
	}
	want := StatusMessage(model.StatusShipped)
	if !strings.Contains(msg.Text, want) || !strings.Contains(msg.HTML, want) {
		t.Errorf("bodies missing status sentence %q", want)
	}
	if !strings.Contains(msg.Text, "- Rose Bouquet (Quantity: 2)") {
		t.Errorf("text missing item line:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Total: ₹500") {
		t.Errorf("text missing total:\n%s", msg.Text)
	}
}

func TestStatusUpdateUnknownStatusPassesThrough(t *testing.T) {
	update := baseUpdate()
	update.Status = "on_hold"

	msg, err := Renderer{}.StatusUpdate(update)
	if err != nil {
		t.Fatalf("StatusUpdate() error: %v", err)
	}
	if msg.Subject != "Order BB-7 Status Update: on_hold" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Order status: on_hold") {
		t.Errorf("text missing fallback sentence:\n%s", msg.Text)
	}
}

func TestStatusUpdateOptionalFields(t *testing.T) {
	msg, err := Renderer{}.StatusUpdate(baseUpdate())
	if err != nil {
		t.Fatalf("StatusUpdate() error: %v", err)
	}
	if strings.Contains(msg.Text, "Estimated Delivery") || strings.Contains(msg.Text, "Delivery Address") {
		t.Error("absent optional fields should be omitted")
	}

	update := baseUpdate()
	update.EstimatedDeliveryDate = "2025-03-05"
	update.DeliveryAddress = "12 Rose Lane, Pune"
	msg, err = Renderer{}.StatusUpdate(update)
	if err != nil {
		t.Fatalf("StatusUpdate() error: %v", err)
	}
	if !strings.Contains(msg.Text, "Estimated Delivery: 5 March 2025") {
		t.Errorf("text missing delivery date:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Delivery Address: 12 Rose Lane, Pune") {
		t.Errorf("text missing address:\n%s", msg.Text)
	}
}

func TestStatusUpdateNameFallback(t *testing.T) {
	update := baseUpdate()
	update.Items = []model.LineItem{
		{ProductName: "Tulip Bunch"},
		{Name: "Gift Wrap"},
		{},
	}

	msg, err := Renderer{}.StatusUpdate(update)
	if err != nil {
		t.Fatalf("StatusUpdate() error: %v", err)
	}
	for _, line := range []string{
		"- Tulip Bunch (Quantity: 1)",
		"- Gift Wrap (Quantity: 1)",
		"- Product (Quantity: 1)",
	} {
		if !strings.Contains(msg.Text, line) {
			t.Errorf("text missing %q:\n%s", line, msg.Text)
		}
	}
}
