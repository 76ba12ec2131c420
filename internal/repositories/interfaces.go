package repositories

import (
	"context"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	UpdateEngineMode(ctx context.Context, id string, mode models.EngineMode) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type CategoryRepository interface {
	BulkCreate(ctx context.Context, categories []*models.Category) error
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Category, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error
	Create(ctx context.Context, menuItem *models.MenuItem) error
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	GetCompletedByRestaurantID(ctx context.Context, restaurantID string) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
