package models

// Ingredient is one costed recipe line of a menu item. Cost is the
// per-portion ingredient cost in the restaurant's currency.
type Ingredient struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

type MenuItem struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurant_id"`
	CategoryID   string       `json:"category_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	Popularity   float64      `json:"popularity"` // 0..1, maintained by the sales pipeline
	Available    bool         `json:"available"`
	ImageURL     string       `json:"image_url"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// UnitCost sums the recipe ingredient costs. The second return is false when
// the cost is not computable: no recipe lines, or a line without a positive
// cost. Menus with incomplete costing are a normal state, not an error.
func (m *MenuItem) UnitCost() (float64, bool) {
	if len(m.Ingredients) == 0 {
		return 0, false
	}
	var total float64
	for _, ing := range m.Ingredients {
		if ing.Cost <= 0 {
			return 0, false
		}
		total += ing.Cost
	}
	return total, true
}

func (m *MenuItem) HasImage() bool {
	return m.ImageURL != ""
}
