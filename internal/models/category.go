package models

type Category struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	// DisplayOrder is a sparse integer used purely as a sort key.
	DisplayOrder int `json:"display_order"`
}
