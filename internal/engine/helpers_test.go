package engine

import (
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

// testItem builds a menu item whose margin rate works out to
// (price-cost)/price. A non-positive cost produces an item with no
// computable cost.
func testItem(id, name, categoryID string, price, cost, popularity float64) *models.MenuItem {
	item := &models.MenuItem{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
		Popularity: popularity,
		Available:  true,
		ImageURL:   "https://cdn.example.com/" + id + ".jpg",
	}
	if cost > 0 {
		item.Ingredients = []models.Ingredient{{Name: "base", Cost: cost}}
	}
	return item
}

func testCategory(id, name string, displayOrder int) *models.Category {
	return &models.Category{ID: id, Name: name, DisplayOrder: displayOrder}
}

func completedOrder(id string, itemIDs ...string) *models.Order {
	return &models.Order{
		ID:      id,
		ItemIDs: itemIDs,
		Status:  models.OrderStatusCompleted,
	}
}
