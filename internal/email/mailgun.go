package email

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/bloombasket/notifier/internal/config"
)

// MailgunSender implements Sender using the Mailgun API.
type MailgunSender struct {
	client *mailgun.MailgunImpl
	from   string
}

// NewMailgunSender creates a new Mailgun transport.
func NewMailgunSender(cfg config.EmailConfig) (*MailgunSender, error) {
	if cfg.Mailgun.APIKey == "" {
		return nil, fmt.Errorf("mailgun: API key is required")
	}
	if cfg.Mailgun.Domain == "" {
		return nil, fmt.Errorf("mailgun: domain is required")
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("mailgun: sender address is required")
	}

	mg := mailgun.NewMailgun(cfg.Mailgun.Domain, cfg.Mailgun.APIKey)
	if cfg.Mailgun.Region == "eu" {
		mg.SetAPIBase("https://api.eu.mailgun.net/v3")
	}

	from := cfg.SenderAddress
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
	}

	return &MailgunSender{client: mg, from: from}, nil
}

// Send sends an email via Mailgun.
func (p *MailgunSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mailgun: recipient is required")
	}

	m := p.client.NewMessage(p.from, msg.Subject, msg.TextBody, msg.To)
	if msg.HTMLBody != "" {
		m.SetHtml(msg.HTMLBody)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, _, err := p.client.Send(ctx, m); err != nil {
		return fmt.Errorf("mailgun: %w: %v", ErrSendFailed, err)
	}
	return nil
}
