package events

import (
	"context"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink lands guest events in the guest_events table, sharing the
// repository pool.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

func (p *PostgresSink) Write(event models.GuestEvent) error {
	query := `
        INSERT INTO guest_events (id, restaurant_id, event_type, payload, guest_id, variant, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	payload := event.Payload
	if payload == "" {
		payload = "{}"
	}
	_, err := p.pool.Exec(context.Background(), query,
		event.ID,
		event.RestaurantID,
		event.EventType,
		payload,
		nullable(event.GuestID),
		nullable(event.Variant),
		event.Timestamp,
	)
	return err
}

func (p *PostgresSink) Close() error {
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
