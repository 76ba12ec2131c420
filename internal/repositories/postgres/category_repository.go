package postgres

import (
	"context"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) BulkCreate(ctx context.Context, categories []*models.Category) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"categories"},
		[]string{"id", "restaurant_id", "name", "display_order"},
		pgx.CopyFromSlice(len(categories), func(i int) ([]interface{}, error) {
			return []interface{}{
				categories[i].ID,
				categories[i].RestaurantID,
				categories[i].Name,
				categories[i].DisplayOrder,
			}, nil
		}),
	)
	return err
}

func (r *CategoryRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Category, error) {
	query := `
        SELECT id, restaurant_id, name, display_order
        FROM categories
        WHERE restaurant_id = $1
        ORDER BY display_order, name
    `
	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		err := rows.Scan(
			&category.ID,
			&category.RestaurantID,
			&category.Name,
			&category.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}

func (r *CategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE categories CASCADE")
	return err
}
