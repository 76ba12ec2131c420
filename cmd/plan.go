package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ChethakaL/resturant-saas-sub004/internal/engine"
	"github.com/ChethakaL/resturant-saas-sub004/internal/experiments"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/ChethakaL/resturant-saas-sub004/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

// planFixture is the offline input format for `menuengine plan --fixture`,
// letting the engine run against a snapshot without a database.
type planFixture struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	Categories []*models.Category `json:"categories"`
	Items      []*models.MenuItem `json:"items"`
	Orders     []*models.Order    `json:"orders"`
}

var (
	planRestaurantID string
	planFixturePath  string
	planGuestID      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and print a display plan for one restaurant",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		var restaurant *models.Restaurant
		var categories []*models.Category
		var items []*models.MenuItem
		var orders []*models.Order

		if planFixturePath != "" {
			fixture, err := loadFixture(planFixturePath)
			if err != nil {
				log.Fatalf("Failed to load fixture: %v", err)
			}
			restaurant = fixture.Restaurant
			categories = fixture.Categories
			items = fixture.Items
			orders = fixture.Orders
		} else {
			if planRestaurantID == "" {
				log.Fatal("either --restaurant or --fixture is required")
			}
			pool, err := openPool(ctx, cfg)
			if err != nil {
				log.Fatalf("Failed to open database: %v", err)
			}
			defer pool.Close()

			restaurant, err = postgres.NewRestaurantRepository(pool).GetByID(ctx, planRestaurantID)
			if err != nil {
				log.Fatalf("Failed to load restaurant: %v", err)
			}
			categories, err = postgres.NewCategoryRepository(pool).GetByRestaurantID(ctx, planRestaurantID)
			if err != nil {
				log.Fatalf("Failed to load categories: %v", err)
			}
			items, err = postgres.NewMenuItemRepository(pool).GetByRestaurantID(ctx, planRestaurantID)
			if err != nil {
				log.Fatalf("Failed to load menu items: %v", err)
			}
			orders, err = postgres.NewOrderRepository(pool).GetCompletedByRestaurantID(ctx, planRestaurantID)
			if err != nil {
				log.Fatalf("Failed to load orders: %v", err)
			}
		}

		modeString := restaurant.EngineMode
		if modeString == "" {
			modeString = cfg.DefaultMode
		}
		mode, err := models.ParseEngineMode(modeString)
		if err != nil {
			log.Fatalf("Restaurant engine mode is misconfigured: %v", err)
		}
		settings := engine.ResolveSettings(mode)

		assigner := experiments.NewAssigner(experiments.NewMemoryStore(), planGuestID, int64(cfg.Seed))
		variants, err := assigner.AllVariants(ctx)
		if err != nil {
			log.Fatalf("Failed to resolve experiments: %v", err)
		}

		eng := engine.New(engine.Config{
			BundleDiscountPercentage: cfg.BundleDiscountPercentage,
			PremiumPriceQuantile:     cfg.PremiumPriceQuantile,
		})
		plan := eng.GeneratePlan(items, categories, settings, variants)
		plan.Bundles = eng.SynthesizeBundles(orders, items, settings)

		out, err := json.MarshalIndent(map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"mode":          mode,
			"variants":      variants,
			"plan":          plan,
		}, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal plan: %v", err)
		}
		fmt.Println(string(out))
	},
}

func loadFixture(path string) (*planFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture planFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	if fixture.Restaurant == nil {
		return nil, fmt.Errorf("fixture %s has no restaurant", path)
	}
	return &fixture, nil
}

func init() {
	planCmd.Flags().StringVar(&planRestaurantID, "restaurant", "", "Restaurant id to plan for")
	planCmd.Flags().StringVar(&planFixturePath, "fixture", "", "JSON fixture with restaurant, categories, items and orders")
	planCmd.Flags().StringVar(&planGuestID, "guest", "preview", "Guest id used for experiment bucketing")
	rootCmd.AddCommand(planCmd)
}
