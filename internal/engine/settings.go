package engine

import (
	"fmt"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

// unlimitedItemCap stands in for "no cap" in the classic preset so every
// item renders without a see-more fold.
const unlimitedItemCap = 999

// ResolveSettings maps the restaurant-selected mode to its settings bundle.
// It is total over the closed mode enum; an unknown mode is a configuration
// error and panics rather than silently defaulting, since a wrong default
// would misrepresent margin-sensitive display choices.
func ResolveSettings(mode models.EngineMode) models.EngineSettings {
	switch mode {
	case models.EngineModeClassic:
		return models.EngineSettings{
			Mode:                       mode,
			MaxItemsPerCategory:        unlimitedItemCap,
			MaxInitialItemsPerCategory: unlimitedItemCap,
		}
	case models.EngineModeProfit, models.EngineModeAdaptive:
		// profit and adaptive share one optimized preset; the distinction is
		// carried by the mode tag and consumed downstream.
		return models.EngineSettings{
			Mode:                       mode,
			MoodFlow:                   true,
			Bundles:                    true,
			Upsells:                    true,
			ScarcityBadges:             true,
			PriceAnchoring:             true,
			BundleCorrelationThreshold: 0.35,
			MaxItemsPerCategory:        7,
			MaxInitialItemsPerCategory: 3,
			IdleUpsellDelaySeconds:     6,
		}
	}
	panic(fmt.Sprintf("unknown engine mode %q", mode))
}
