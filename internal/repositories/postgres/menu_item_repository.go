package postgres

import (
	"context"
	"encoding/json"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "restaurant_id", "category_id", "name", "description",
			"price", "popularity", "available", "image_url", "ingredients",
		},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			ingredients, err := json.Marshal(menuItems[i].Ingredients)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].RestaurantID,
				menuItems[i].CategoryID,
				menuItems[i].Name,
				menuItems[i].Description,
				menuItems[i].Price,
				menuItems[i].Popularity,
				menuItems[i].Available,
				menuItems[i].ImageURL,
				ingredients,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, menuItem *models.MenuItem) error {
	ingredients, err := json.Marshal(menuItem.Ingredients)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO menu_items (
            id, restaurant_id, category_id, name, description,
            price, popularity, available, image_url, ingredients
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
        )
    `

	_, err = r.pool.Exec(ctx, query,
		menuItem.ID,
		menuItem.RestaurantID,
		menuItem.CategoryID,
		menuItem.Name,
		menuItem.Description,
		menuItem.Price,
		menuItem.Popularity,
		menuItem.Available,
		menuItem.ImageURL,
		ingredients,
	)
	return err
}

func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error) {
	query := `
        SELECT id, restaurant_id, category_id, name, description,
               price, popularity, available, image_url, ingredients
        FROM menu_items
        WHERE restaurant_id = $1
        ORDER BY name
    `
	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menuItems []*models.MenuItem
	for rows.Next() {
		menuItem := &models.MenuItem{}
		var ingredients []byte
		err := rows.Scan(
			&menuItem.ID,
			&menuItem.RestaurantID,
			&menuItem.CategoryID,
			&menuItem.Name,
			&menuItem.Description,
			&menuItem.Price,
			&menuItem.Popularity,
			&menuItem.Available,
			&menuItem.ImageURL,
			&ingredients,
		)
		if err != nil {
			return nil, err
		}
		if len(ingredients) > 0 {
			if err := json.Unmarshal(ingredients, &menuItem.Ingredients); err != nil {
				return nil, err
			}
		}
		menuItems = append(menuItems, menuItem)
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}
