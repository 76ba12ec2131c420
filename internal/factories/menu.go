package factories

import (
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/lucsky/cuid"
)

type MenuFactory struct{}

// menuBlueprint keeps the generated demo menus realistic enough to exercise
// classification, moods, bundle phrasing and the profit-mode category
// re-rank.
var menuBlueprint = []struct {
	category     string
	displayOrder int
	dishes       []string
	ingredients  [][]string
}{
	{
		category:     "Starters",
		displayOrder: 1,
		dishes:       []string{"Devilled Prawns", "Fish Cutlets", "Vegetable Spring Rolls", "Hot Butter Cuttlefish"},
		ingredients:  [][]string{{"Prawns", "Chilli Paste", "Onion"}, {"Tuna", "Potato", "Breadcrumbs"}, {"Cabbage", "Carrot", "Pastry"}, {"Cuttlefish", "Butter", "Chilli Flakes"}},
	},
	{
		category:     "Salads",
		displayOrder: 2,
		dishes:       []string{"Gotukola Sambol", "Greek Salad", "Mango Avocado Salad"},
		ingredients:  [][]string{{"Gotukola", "Coconut", "Lime"}, {"Feta", "Olives", "Cucumber"}, {"Mango", "Avocado", "Rocket"}},
	},
	{
		category:     "Rice & Curry Mains",
		displayOrder: 3,
		dishes:       []string{"Chicken Kottu", "Seafood Fried Rice", "Lamprais", "Crab Curry", "Polos Curry"},
		ingredients:  [][]string{{"Godamba Roti", "Chicken", "Leeks", "Egg"}, {"Rice", "Prawns", "Cuttlefish", "Egg"}, {"Rice", "Chicken", "Banana Leaf", "Sambol"}, {"Crab", "Coconut Milk", "Curry Powder"}, {"Young Jackfruit", "Coconut Milk", "Spices"}},
	},
	{
		category:     "Desserts",
		displayOrder: 4,
		dishes:       []string{"Watalappan", "Curd & Treacle", "Chocolate Biscuit Pudding"},
		ingredients:  [][]string{{"Jaggery", "Coconut Milk", "Egg"}, {"Buffalo Curd", "Kithul Treacle"}, {"Biscuits", "Chocolate", "Butter"}},
	},
	{
		category:     "Drinks",
		displayOrder: 5,
		dishes:       []string{"King Coconut", "Faluda", "Lime Juice", "Ceylon Iced Tea"},
		ingredients:  [][]string{{"King Coconut"}, {"Rose Syrup", "Milk", "Basil Seeds"}, {"Lime", "Sugar"}, {"Ceylon Tea", "Ice", "Lemon"}},
	},
}

func (mf *MenuFactory) CreateCategories(restaurant *models.Restaurant) []*models.Category {
	categories := make([]*models.Category, 0, len(menuBlueprint))
	for _, bp := range menuBlueprint {
		categories = append(categories, &models.Category{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Name:         bp.category,
			DisplayOrder: bp.displayOrder,
		})
	}
	return categories
}

// CreateMenuItems produces the dishes for the blueprint categories. Roughly
// one dish in six is generated without ingredient costs so seeded data also
// exercises the conservative no-cost classification path.
func (mf *MenuFactory) CreateMenuItems(restaurant *models.Restaurant, categories []*models.Category) []*models.MenuItem {
	var items []*models.MenuItem
	for ci, bp := range menuBlueprint {
		for di, dish := range bp.dishes {
			item := &models.MenuItem{
				ID:           cuid.New(),
				RestaurantID: restaurant.ID,
				CategoryID:   categories[ci].ID,
				Name:         dish,
				Description:  fake.Lorem().Sentence(8),
				Price:        fake.Float64(2, 400, 3800),
				Popularity:   fake.Float64(2, 0, 100) / 100,
				Available:    fake.IntBetween(0, 9) > 0,
				Ingredients:  costedIngredients(bp.ingredients[di]),
			}
			if fake.IntBetween(0, 9) > 2 {
				item.ImageURL = fake.Internet().URL()
			}
			if fake.IntBetween(0, 5) == 0 {
				item.Ingredients = nil
			}
			items = append(items, item)
		}
	}
	return items
}

func costedIngredients(names []string) []models.Ingredient {
	ingredients := make([]models.Ingredient, len(names))
	for i, name := range names {
		ingredients[i] = models.Ingredient{
			Name: name,
			Cost: fake.Float64(2, 30, 450),
		}
	}
	return ingredients
}
