package engine

// Config carries the numeric choices that are deliberately configurable
// rather than baked into a mode preset.
type Config struct {
	BundleDiscountPercentage float64
	PremiumPriceQuantile     float64
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	if cfg.BundleDiscountPercentage <= 0 || cfg.BundleDiscountPercentage >= 1 {
		cfg.BundleDiscountPercentage = 0.10
	}
	if cfg.PremiumPriceQuantile <= 0 || cfg.PremiumPriceQuantile >= 1 {
		cfg.PremiumPriceQuantile = 0.80
	}
	return &Engine{cfg: cfg}
}
