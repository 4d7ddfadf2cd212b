package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/bloombasket/notifier/internal/config"
)

// ErrSendFailed wraps provider-level delivery failures.
var ErrSendFailed = errors.New("failed to send email")

// Sender is the interface all email transports implement. The dispatcher
// only depends on this, so providers can be swapped through configuration.
type Sender interface {
	// Send delivers one message to one recipient.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// New constructs the transport selected by configuration.
func New(ctx context.Context, cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case "gmail":
		if cfg.Gmail.CredentialsJSON != "" {
			return NewGmailSender(ctx, cfg)
		}
		return NewGmailSenderWithToken(ctx, cfg)
	case "mailgun":
		return NewMailgunSender(cfg)
	case "resend":
		return NewResendSender(cfg)
	case "memory":
		return NewMemorySender(), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.Provider)
	}
}
