package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ChethakaL/resturant-saas-sub004/internal/experiments"
	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "menuengine",
	Short: "Menu revenue-optimization engine for the restaurant platform",
	Long:  `menuengine computes display plans for restaurant menus: quadrant classification, display hints, mood flows, co-purchase bundles and upsell sequencing, driven by the restaurant's engine mode.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("default-mode", "classic", "Engine mode for restaurants without one configured")
	rootCmd.PersistentFlags().Float64("bundle-discount-percentage", 0.10, "Markdown applied to bundle prices")
	rootCmd.PersistentFlags().Float64("premium-price-quantile", 0.80, "Price quantile feeding the premium mood")
	rootCmd.PersistentFlags().String("event-sink", "console", "Guest event sink: console, json, kafka, parquet or postgres")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("experiment-store", "memory", "Experiment assignment store: memory, file or redis")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func openPool(ctx context.Context, cfg *models.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return pool, nil
}

func newExperimentStore(cfg *models.Config) (experiments.Store, error) {
	switch cfg.ExperimentStore {
	case "memory", "":
		return experiments.NewMemoryStore(), nil
	case "file":
		if cfg.ExperimentStorePath == "" {
			return nil, fmt.Errorf("experiment_store_path is required for the file store")
		}
		return experiments.NewFileStore(cfg.ExperimentStorePath), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return experiments.NewRedisStore(client), nil
	}
	return nil, fmt.Errorf("unsupported experiment store: %s", cfg.ExperimentStore)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
