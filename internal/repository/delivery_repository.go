package repository

import (
	"context"
	"fmt"

	"github.com/bloombasket/notifier/internal/database"
	"github.com/bloombasket/notifier/internal/model"
)

// DeliveryRepository persists the delivery log: one row per send attempt,
// successful or not, for operator visibility.
type DeliveryRepository struct {
	db *database.Postgres
}

// NewDeliveryRepository creates a new DeliveryRepository
func NewDeliveryRepository(db *database.Postgres) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// Record inserts a delivery log entry
func (r *DeliveryRepository) Record(ctx context.Context, d *model.Delivery) error {
	query := `
		INSERT INTO deliveries (id, order_number, kind, recipient, subject,
		    delivered, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.OrderNumber,
		d.Kind,
		d.Recipient,
		d.Subject,
		d.Delivered,
		d.Error,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

// ListByOrder returns the most recent delivery attempts for an order
func (r *DeliveryRepository) ListByOrder(ctx context.Context, orderNumber string, limit int) ([]model.Delivery, error) {
	query := `
		SELECT id, order_number, kind, recipient, subject, delivered, error, created_at
		FROM deliveries
		WHERE order_number = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, orderNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		if err := rows.Scan(&d.ID, &d.OrderNumber, &d.Kind, &d.Recipient,
			&d.Subject, &d.Delivered, &d.Error, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
