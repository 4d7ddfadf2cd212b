package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/bloombasket/notifier/internal/config"
	"github.com/bloombasket/notifier/internal/database"
	"github.com/bloombasket/notifier/internal/email"
	"github.com/bloombasket/notifier/internal/logger"
	"github.com/bloombasket/notifier/internal/model"
	"github.com/bloombasket/notifier/internal/render"
	"github.com/bloombasket/notifier/internal/repository"
)

// ErrNoCustomerEmail is returned in the Result when an order carries no
// customer address.
var ErrNoCustomerEmail = errors.New("order has no customer email")

// Result is the outcome of one dispatch. Delivered reflects only the
// customer-facing send; admin fan-out is secondary and surfaces through
// AdminFailures and the logs.
type Result struct {
	Delivered     bool
	AdminFailures int
	Err           error
}

// OK reports whether the customer-facing send succeeded.
func (r Result) OK() bool { return r.Delivered }

func failure(err error) Result { return Result{Err: err} }

const cooldownKeyPrefix = "notify_cooldown:"

// NotificationService renders order notifications and dispatches them to the
// customer and the configured admin recipients. Transport and rendering
// failures never propagate to the caller; they surface only in the Result
// and the logs, so a failed notification cannot abort order processing.
type NotificationService struct {
	sender     email.Sender
	renderer   render.Renderer
	deliveries *repository.DeliveryRepository // optional, may be nil
	rdb        *database.Redis                // optional, may be nil
	cfg        *config.Config
	log        *logger.Logger
}

// NewNotificationService creates a new NotificationService. deliveries and
// rdb may be nil when the delivery log / cooldown are disabled.
func NewNotificationService(
	sender email.Sender,
	renderer render.Renderer,
	deliveries *repository.DeliveryRepository,
	rdb *database.Redis,
	cfg *config.Config,
	log *logger.Logger,
) *NotificationService {
	return &NotificationService{
		sender:     sender,
		renderer:   renderer,
		deliveries: deliveries,
		rdb:        rdb,
		cfg:        cfg,
		log:        log.WithComponent("notification"),
	}
}

// SendOrderConfirmation renders and dispatches the order-confirmation email:
// one message to the customer, then one copy per configured admin address
// with the subject rewritten to "New Order Placed - {orderNumber}". Admin
// fan-out is sequential and best-effort: a failed admin send is logged,
// counted, and the remaining admins are still attempted. If the customer
// send fails the admins are not contacted.
func (s *NotificationService) SendOrderConfirmation(ctx context.Context, order model.Order) (res Result) {
	defer s.absorb("order_confirmation", &res)

	log := s.log.WithOrder(order.OrderNumber)
	if order.CustomerEmail == "" {
		log.Error().Msg("cannot send confirmation without customer email")
		return failure(ErrNoCustomerEmail)
	}
	if s.onCooldown(ctx, model.DeliveryKindConfirmation, order.OrderNumber) {
		log.Info().Msg("confirmation suppressed by cooldown")
		return Result{Delivered: true}
	}

	msg, err := s.renderer.Confirmation(order)
	if err != nil {
		log.Error().Err(err).Msg("failed to render confirmation")
		return failure(err)
	}

	if err := s.deliver(ctx, model.DeliveryKindConfirmation, order.OrderNumber,
		order.CustomerEmail, msg.Subject, msg); err != nil {
		return failure(err)
	}
	res = Result{Delivered: true}

	adminSubject := fmt.Sprintf("New Order Placed - %s", order.OrderNumber)
	for _, admin := range s.cfg.Notifications.AdminEmails {
		if err := s.deliver(ctx, model.DeliveryKindConfirmation, order.OrderNumber,
			admin, adminSubject, msg); err != nil {
			res.AdminFailures++
		}
	}

	s.markCooldown(ctx, model.DeliveryKindConfirmation, order.OrderNumber)
	return res
}

// SendStatusUpdate renders and dispatches the status-change email: one
// message to the order's address, then one copy per admin with the subject
// prefixed "[ADMIN] ". Fan-out policy matches SendOrderConfirmation.
func (s *NotificationService) SendStatusUpdate(ctx context.Context, update model.StatusUpdate) (res Result) {
	defer s.absorb("status_update", &res)

	log := s.log.WithOrder(update.OrderNumber)
	if update.CustomerEmail == "" {
		log.Error().Msg("cannot send status update without customer email")
		return failure(ErrNoCustomerEmail)
	}
	if s.onCooldown(ctx, model.DeliveryKindStatusUpdate, update.OrderNumber+":"+update.Status) {
		log.Info().Str("status", update.Status).Msg("status update suppressed by cooldown")
		return Result{Delivered: true}
	}

	msg, err := s.renderer.StatusUpdate(update)
	if err != nil {
		log.Error().Err(err).Msg("failed to render status update")
		return failure(err)
	}

	if err := s.deliver(ctx, model.DeliveryKindStatusUpdate, update.OrderNumber,
		update.CustomerEmail, msg.Subject, msg); err != nil {
		return failure(err)
	}
	res = Result{Delivered: true}

	adminSubject := "[ADMIN] " + msg.Subject
	for _, admin := range s.cfg.Notifications.AdminEmails {
		if err := s.deliver(ctx, model.DeliveryKindStatusUpdate, update.OrderNumber,
			admin, adminSubject, msg); err != nil {
			res.AdminFailures++
		}
	}

	s.markCooldown(ctx, model.DeliveryKindStatusUpdate, update.OrderNumber+":"+update.Status)
	return res
}

// SendTest sends a canned message to verify transport connectivity.
func (s *NotificationService) SendTest(ctx context.Context, toEmail string) (res Result) {
	defer s.absorb("test", &res)

	if toEmail == "" {
		return failure(errors.New("test recipient is required"))
	}

	msg := render.Message{
		Subject: "BloomBasket Notification Test",
		HTML:    "<p>This is a test message from the BloomBasket notifier. If you can read this, email sending is configured correctly.</p>",
		Text:    "This is a test message from the BloomBasket notifier. If you can read this, email sending is configured correctly.",
	}

	if err := s.deliver(ctx, model.DeliveryKindTest, "", toEmail, msg.Subject, msg); err != nil {
		return failure(err)
	}
	return Result{Delivered: true}
}

// deliver sends one copy of a rendered message to one recipient and records
// the attempt in the delivery log when enabled. The returned error has
// already been logged.
func (s *NotificationService) deliver(ctx context.Context, kind, orderNumber, to, subject string, msg render.Message) error {
	sendErr := s.sender.Send(ctx, email.Message{
		To:       to,
		Subject:  subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	})

	if sendErr != nil {
		s.log.Error().Err(sendErr).
			Str("kind", kind).
			Str("order_number", orderNumber).
			Str("recipient", to).
			Msg("email send failed")
	} else {
		s.log.Info().
			Str("kind", kind).
			Str("order_number", orderNumber).
			Str("recipient", to).
			Str("subject", subject).
			Msg("email sent")
	}

	s.record(ctx, kind, orderNumber, to, subject, sendErr)
	return sendErr
}

// record writes the delivery-log row. Best effort: a logging failure must
// never change a dispatch outcome.
func (s *NotificationService) record(ctx context.Context, kind, orderNumber, to, subject string, sendErr error) {
	if s.deliveries == nil || !s.cfg.Notifications.DeliveryLog {
		return
	}
	d := &model.Delivery{
		ID:          uuid.NewString(),
		OrderNumber: orderNumber,
		Kind:        kind,
		Recipient:   to,
		Subject:     subject,
		Delivered:   sendErr == nil,
		CreatedAt:   time.Now().UTC(),
	}
	if sendErr != nil {
		d.Error = sendErr.Error()
	}
	if err := s.deliveries.Record(ctx, d); err != nil {
		s.log.Warn().Err(err).Str("order_number", orderNumber).Msg("failed to record delivery")
	}
}

// onCooldown reports whether an equivalent notification went out within the
// cooldown window. With the cooldown disabled (the default) this is always
// false and re-invoking a send resends.
func (s *NotificationService) onCooldown(ctx context.Context, kind, key string) bool {
	if s.rdb == nil || !s.cfg.Notifications.CooldownEnabled {
		return false
	}
	n, err := s.rdb.Exists(ctx, cooldownKeyPrefix+kind+":"+key)
	if err != nil {
		s.log.Warn().Err(err).Msg("cooldown check failed, sending anyway")
		return false
	}
	return n > 0
}

func (s *NotificationService) markCooldown(ctx context.Context, kind, key string) {
	if s.rdb == nil || !s.cfg.Notifications.CooldownEnabled {
		return
	}
	ttl := s.cfg.Notifications.Cooldown
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := s.rdb.SetWithTTL(ctx, cooldownKeyPrefix+kind+":"+key, "1", ttl); err != nil {
		s.log.Warn().Err(err).Msg("failed to set cooldown")
	}
}

// absorb converts a panic anywhere in a dispatch into a failed Result. The
// caller-visible contract is the Result alone.
func (s *NotificationService) absorb(op string, res *Result) {
	if rec := recover(); rec != nil {
		s.log.Error().
			Interface("panic", rec).
			Str("stack", string(debug.Stack())).
			Str("op", op).
			Msg("panic recovered in dispatcher")
		*res = Result{Err: fmt.Errorf("%s: panic: %v", op, rec)}
	}
}
