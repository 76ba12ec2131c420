package postgres

import (
	"context"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{"id", "restaurant_id", "guest_id", "item_ids", "total_amount", "status", "placed_at"},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			return []interface{}{
				orders[i].ID,
				orders[i].RestaurantID,
				orders[i].GuestID,
				orders[i].ItemIDs,
				orders[i].TotalAmount,
				orders[i].Status,
				orders[i].PlacedAt,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) GetCompletedByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Order, error) {
	query := `
        SELECT id, restaurant_id, guest_id, item_ids, total_amount, status, placed_at
        FROM orders
        WHERE restaurant_id = $1 AND status = $2
        ORDER BY placed_at
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, models.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.RestaurantID,
			&order.GuestID,
			&order.ItemIDs,
			&order.TotalAmount,
			&order.Status,
			&order.PlacedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders CASCADE")
	return err
}
