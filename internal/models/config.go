package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Seed       int    `mapstructure:"seed"`
	ListenAddr string `mapstructure:"listen_addr"`

	// Engine knobs that are deliberately configurable rather than part of a
	// mode preset.
	DefaultMode              string  `mapstructure:"default_mode"`
	BundleDiscountPercentage float64 `mapstructure:"bundle_discount_percentage"`
	PremiumPriceQuantile     float64 `mapstructure:"premium_price_quantile"`

	// Guest-event sink selection: console, json, kafka, parquet or postgres.
	EventSink         string `mapstructure:"event_sink"`
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputDestination string `mapstructure:"output_destination"` // local or s3

	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	ExperimentStore     string `mapstructure:"experiment_store"` // memory, file or redis
	ExperimentStorePath string `mapstructure:"experiment_store_path"`

	SeedRestaurants int `mapstructure:"seed_restaurants"`
	SeedOrders      int `mapstructure:"seed_orders"`

	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("listen_addr", ":8084")
	viper.SetDefault("default_mode", string(EngineModeClassic))
	viper.SetDefault("bundle_discount_percentage", 0.10)
	viper.SetDefault("premium_price_quantile", 0.80)
	viper.SetDefault("event_sink", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("experiment_store", "memory")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.BundleDiscountPercentage < 0 || config.BundleDiscountPercentage >= 1 {
		return nil, fmt.Errorf("bundle_discount_percentage must be in [0, 1), got %v", config.BundleDiscountPercentage)
	}

	return &config, nil
}
