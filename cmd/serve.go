package cmd

import (
	"context"
	"log"

	"github.com/ChethakaL/resturant-saas-sub004/internal/engine"
	"github.com/ChethakaL/resturant-saas-sub004/internal/events"
	"github.com/ChethakaL/resturant-saas-sub004/internal/repositories/postgres"
	"github.com/ChethakaL/resturant-saas-sub004/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the display-plan API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		pool, err := openPool(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer pool.Close()

		if err := postgres.InitSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to initialise schema: %v", err)
		}

		sink, err := events.NewSink(cfg, pool)
		if err != nil {
			log.Fatalf("Failed to create event sink: %v", err)
		}
		defer sink.Close()

		expStore, err := newExperimentStore(cfg)
		if err != nil {
			log.Fatalf("Failed to create experiment store: %v", err)
		}

		eng := engine.New(engine.Config{
			BundleDiscountPercentage: cfg.BundleDiscountPercentage,
			PremiumPriceQuantile:     cfg.PremiumPriceQuantile,
		})

		srv := server.New(
			cfg,
			eng,
			postgres.NewRestaurantRepository(pool),
			postgres.NewCategoryRepository(pool),
			postgres.NewMenuItemRepository(pool),
			postgres.NewOrderRepository(pool),
			sink,
			expStore,
		)
		// deferred after sink.Close's defer, so it runs first on exit and
		// late event writes cannot race the sink shutdown
		defer srv.Drain()

		log.Printf("Serving display-plan API on %s", cfg.ListenAddr)
		if err := srv.Router().Run(cfg.ListenAddr); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
