package factories

import (
	"fmt"
	"strings"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type RestaurantFactory struct{}

var towns = []string{"Colombo 03", "Colombo 07", "Dehiwala", "Mount Lavinia", "Nugegoda", "Kandy", "Galle", "Negombo"}

func (rf *RestaurantFactory) CreateRestaurant(mode models.EngineMode) *models.Restaurant {
	name := fmt.Sprintf("%s %s", fake.Person().LastName(), pick([]string{"Kitchen", "Hotel", "Restaurant", "Cafe", "Food Court"}))
	return &models.Restaurant{
		ID:         cuid.New(),
		Name:       name,
		SlugName:   slugify(name),
		Town:       pick(towns),
		Phone:      fake.Phone().Number(),
		Currency:   "LKR",
		EngineMode: string(mode),
	}
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func pick(options []string) string {
	return options[fake.IntBetween(0, len(options)-1)]
}
