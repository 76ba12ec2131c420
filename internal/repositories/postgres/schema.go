package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
        id          TEXT PRIMARY KEY,
        name        TEXT NOT NULL,
        slug_name   TEXT NOT NULL,
        town        TEXT,
        phone       TEXT,
        currency    TEXT NOT NULL DEFAULT 'LKR',
        engine_mode TEXT NOT NULL DEFAULT 'classic'
    )`,
	`CREATE TABLE IF NOT EXISTS categories (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
        name          TEXT NOT NULL,
        display_order INTEGER NOT NULL DEFAULT 0
    )`,
	`CREATE TABLE IF NOT EXISTS menu_items (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
        category_id   TEXT NOT NULL REFERENCES categories(id),
        name          TEXT NOT NULL,
        description   TEXT,
        price         DOUBLE PRECISION NOT NULL,
        popularity    DOUBLE PRECISION NOT NULL DEFAULT 0,
        available     BOOLEAN NOT NULL DEFAULT TRUE,
        image_url     TEXT,
        ingredients   JSONB NOT NULL DEFAULT '[]'
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
        guest_id      TEXT,
        item_ids      TEXT[] NOT NULL,
        total_amount  DOUBLE PRECISION NOT NULL,
        status        TEXT NOT NULL,
        placed_at     TIMESTAMPTZ NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS guest_events (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL,
        event_type    TEXT NOT NULL,
        payload       JSONB,
        guest_id      TEXT,
        variant       TEXT,
        timestamp     BIGINT NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_restaurant_status ON orders(restaurant_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_guest_events_restaurant ON guest_events(restaurant_id, event_type)`,
}

// InitSchema creates the tables the repositories and the postgres event sink
// depend on.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}
	return nil
}
