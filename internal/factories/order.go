package factories

import (
	"math/rand"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/lucsky/cuid"
)

type OrderFactory struct{}

// CreateOrderHistory generates completed orders over the trailing month. A
// third of orders reuse a small set of planted item pairs so the seeded
// history reliably clears the bundle correlation threshold.
func (of *OrderFactory) CreateOrderHistory(restaurant *models.Restaurant, items []*models.MenuItem, count int, rng *rand.Rand) []*models.Order {
	available := make([]*models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	if len(available) < 2 {
		return nil
	}

	pairCount := len(available) / 4
	if pairCount < 1 {
		pairCount = 1
	}
	pairs := make([][2]*models.MenuItem, pairCount)
	for i := range pairs {
		a := available[rng.Intn(len(available))]
		b := available[rng.Intn(len(available))]
		for b.ID == a.ID {
			b = available[rng.Intn(len(available))]
		}
		pairs[i] = [2]*models.MenuItem{a, b}
	}

	now := time.Now()
	orders := make([]*models.Order, 0, count)
	for i := 0; i < count; i++ {
		var picked []*models.MenuItem
		if rng.Intn(3) == 0 {
			pair := pairs[rng.Intn(len(pairs))]
			picked = []*models.MenuItem{pair[0], pair[1]}
		} else {
			n := 1 + rng.Intn(3)
			for j := 0; j < n; j++ {
				picked = append(picked, available[rng.Intn(len(available))])
			}
		}

		var ids []string
		var total float64
		for _, item := range picked {
			ids = append(ids, item.ID)
			total += item.Price
		}

		orders = append(orders, &models.Order{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			GuestID:      cuid.New(),
			ItemIDs:      ids,
			TotalAmount:  total,
			Status:       models.OrderStatusCompleted,
			PlacedAt:     now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
		})
	}
	return orders
}
