package email

import (
	"strings"
	"testing"
)

func TestBuildMIMEMultipart(t *testing.T) {
	raw := buildMIME("BloomBasket <orders@x.com>", Message{
		To:       "a@x.com",
		Subject:  "Order Confirmation - BB-1",
		HTMLBody: "<p>hello</p>",
		TextBody: "hello",
	})

	for _, want := range []string{
		"From: BloomBasket <orders@x.com>",
		"To: a@x.com",
		"Subject: Order Confirmation - BB-1",
		"Content-Type: multipart/alternative; boundary=boundary_bloombasket_alt",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
		"--boundary_bloombasket_alt--",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("MIME missing %q:\n%s", want, raw)
		}
	}

	// Plain text part comes before the HTML part.
	if strings.Index(raw, "text/plain") > strings.Index(raw, "text/html") {
		t.Error("text part must precede HTML part")
	}
}

func TestBuildMIMESinglePart(t *testing.T) {
	raw := buildMIME("orders@x.com", Message{
		To:       "a@x.com",
		Subject:  "hi",
		HTMLBody: "<p>hello</p>",
	})
	if strings.Contains(raw, "multipart/alternative") {
		t.Error("HTML-only message should not be multipart")
	}
	if !strings.Contains(raw, "Content-Type: text/html; charset=UTF-8") {
		t.Errorf("missing HTML content type:\n%s", raw)
	}

	raw = buildMIME("orders@x.com", Message{
		To:       "a@x.com",
		Subject:  "hi",
		TextBody: "hello",
	})
	if !strings.Contains(raw, "Content-Type: text/plain; charset=UTF-8") {
		t.Errorf("missing text content type:\n%s", raw)
	}
}
