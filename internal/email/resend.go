package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/bloombasket/notifier/internal/config"
)

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a new Resend transport.
func NewResendSender(cfg config.EmailConfig) (*ResendSender, error) {
	if cfg.Resend.APIKey == "" {
		return nil, fmt.Errorf("resend: API key is required")
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("resend: sender address is required")
	}

	from := cfg.SenderAddress
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderAddress)
	}

	return &ResendSender{client: resend.NewClient(cfg.Resend.APIKey), from: from}, nil
}

// Send sends an email via Resend.
func (p *ResendSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("resend: recipient is required")
	}

	params := &resend.SendEmailRequest{
		From:    p.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.TextBody,
		Html:    msg.HTMLBody,
	}

	if _, err := p.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w: %v", ErrSendFailed, err)
	}
	return nil
}
