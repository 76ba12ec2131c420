package postgres

import (
	"context"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurants"},
		[]string{"id", "name", "slug_name", "town", "phone", "currency", "engine_mode"},
		pgx.CopyFromSlice(len(restaurants), func(i int) ([]interface{}, error) {
			return []interface{}{
				restaurants[i].ID,
				restaurants[i].Name,
				restaurants[i].SlugName,
				restaurants[i].Town,
				restaurants[i].Phone,
				restaurants[i].Currency,
				restaurants[i].EngineMode,
			}, nil
		}),
	)
	return err
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
        INSERT INTO restaurants (id, name, slug_name, town, phone, currency, engine_mode)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.pool.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.SlugName,
		restaurant.Town,
		restaurant.Phone,
		restaurant.Currency,
		restaurant.EngineMode,
	)
	return err
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query := `
        SELECT id, name, slug_name, town, phone, currency, engine_mode
        FROM restaurants
        WHERE id = $1
    `
	restaurant := &models.Restaurant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.SlugName,
		&restaurant.Town,
		&restaurant.Phone,
		&restaurant.Currency,
		&restaurant.EngineMode,
	)
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *RestaurantRepository) UpdateEngineMode(ctx context.Context, id string, mode models.EngineMode) error {
	_, err := r.pool.Exec(ctx, "UPDATE restaurants SET engine_mode = $1 WHERE id = $2", string(mode), id)
	return err
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
