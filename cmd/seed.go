package cmd

import (
	"context"
	"log"
	"math/rand"

	"github.com/ChethakaL/resturant-saas-sub004/internal/factories"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/ChethakaL/resturant-saas-sub004/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedModes = []models.EngineMode{
	models.EngineModeClassic,
	models.EngineModeProfit,
	models.EngineModeAdaptive,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo restaurants, menus and order history",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		restaurants := cfg.SeedRestaurants
		if restaurants <= 0 {
			restaurants = 5
		}
		ordersPer := cfg.SeedOrders
		if ordersPer <= 0 {
			ordersPer = 200
		}
		rng := rand.New(rand.NewSource(int64(cfg.Seed)))

		pool, err := openPool(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer pool.Close()

		if err := postgres.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to initialise schema: %v", err)
		}

		restaurantRepo := postgres.NewRestaurantRepository(pool)
		categoryRepo := postgres.NewCategoryRepository(pool)
		menuItemRepo := postgres.NewMenuItemRepository(pool)
		orderRepo := postgres.NewOrderRepository(pool)

		restaurantFactory := &factories.RestaurantFactory{}
		menuFactory := &factories.MenuFactory{}
		orderFactory := &factories.OrderFactory{}

		bar := progressbar.Default(int64(restaurants), "seeding restaurants")
		for i := 0; i < restaurants; i++ {
			restaurant := restaurantFactory.CreateRestaurant(seedModes[i%len(seedModes)])
			if err := restaurantRepo.Create(ctx, restaurant); err != nil {
				log.Fatalf("Failed to insert restaurant: %v", err)
			}

			categories := menuFactory.CreateCategories(restaurant)
			if err := categoryRepo.BulkCreate(ctx, categories); err != nil {
				log.Fatalf("Failed to insert categories: %v", err)
			}

			items := menuFactory.CreateMenuItems(restaurant, categories)
			if err := menuItemRepo.BulkCreate(ctx, items); err != nil {
				log.Fatalf("Failed to insert menu items: %v", err)
			}

			orders := orderFactory.CreateOrderHistory(restaurant, items, ordersPer, rng)
			if err := orderRepo.BulkCreate(ctx, orders); err != nil {
				log.Fatalf("Failed to insert orders: %v", err)
			}

			log.Printf("Seeded %s (%s): %d categories, %d items, %d orders",
				restaurant.Name, restaurant.EngineMode, len(categories), len(items), len(orders))
			bar.Add(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
