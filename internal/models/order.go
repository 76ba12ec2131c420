package models

import "time"

type Order struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	GuestID      string    `json:"guest_id"`
	ItemIDs      []string  `json:"item_ids"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"` // e.g. "placed", "completed", "cancelled"
	PlacedAt     time.Time `json:"placed_at"`
}

// Completed reports whether the order should count towards co-purchase
// statistics.
func (o *Order) Completed() bool {
	return o.Status == OrderStatusCompleted
}
