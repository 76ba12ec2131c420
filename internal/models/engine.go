package models

import (
	"fmt"
	"strings"
)

// EngineMode is the restaurant-selected optimization strategy. The set is
// closed; anything else in the settings store is a configuration error.
type EngineMode string

const (
	EngineModeClassic  EngineMode = "classic"
	EngineModeProfit   EngineMode = "profit"
	EngineModeAdaptive EngineMode = "adaptive"
)

// ParseEngineMode accepts the mode as stored in config or the restaurants
// table, tolerating case and surrounding whitespace.
func ParseEngineMode(s string) (EngineMode, error) {
	normalized := EngineMode(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case EngineModeClassic, EngineModeProfit, EngineModeAdaptive:
		return normalized, nil
	}
	return "", fmt.Errorf("unknown engine mode %q", s)
}

// EngineSettings is always derived from the mode via engine.ResolveSettings,
// never mutated independently.
type EngineSettings struct {
	Mode                       EngineMode `json:"mode"`
	MoodFlow                   bool       `json:"mood_flow"`
	Bundles                    bool       `json:"bundles"`
	Upsells                    bool       `json:"upsells"`
	ScarcityBadges             bool       `json:"scarcity_badges"`
	PriceAnchoring             bool       `json:"price_anchoring"`
	BundleCorrelationThreshold float64    `json:"bundle_correlation_threshold"`
	MaxItemsPerCategory        int        `json:"max_items_per_category"`
	MaxInitialItemsPerCategory int        `json:"max_initial_items_per_category"`
	IdleUpsellDelaySeconds     int        `json:"idle_upsell_delay_seconds"`
}

type DisplayTier string

const (
	TierHero     DisplayTier = "hero"
	TierFeatured DisplayTier = "featured"
	TierStandard DisplayTier = "standard"
	TierMinimal  DisplayTier = "minimal"
)

// ItemDisplayHints is the per-item render output. Exactly one record exists
// per visible menu item per pass; hints are recomputed on every request and
// never persisted.
type ItemDisplayHints struct {
	ItemID        string      `json:"item_id"`
	Tier          DisplayTier `json:"tier"`
	Position      int         `json:"position"`
	ShowImage     bool        `json:"show_image"`
	PriceText     string      `json:"price_text"`
	IsAnchor      bool        `json:"is_anchor"`
	Subgroup      string      `json:"subgroup,omitempty"`
	LimitedToday  bool        `json:"limited_today"`
	BadgeText     string      `json:"badge_text,omitempty"`
	HideBelowFold bool        `json:"hide_below_fold"`
	MoodTags      []string    `json:"mood_tags,omitempty"`
}

type BundleHint struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ItemIDs       []string `json:"item_ids"`
	BundlePrice   float64  `json:"bundle_price"`
	OriginalPrice float64  `json:"original_price"`
	SavingsText   string   `json:"savings_text"`
}

type UpsellStage string

const (
	StageProteinUpgrade UpsellStage = "protein_upgrade"
	StagePremiumSide    UpsellStage = "premium_side"
	StageBeverage       UpsellStage = "beverage"
	StageDessert        UpsellStage = "dessert"
)

type UpsellSuggestion struct {
	Stage     UpsellStage `json:"stage"`
	ItemID    string      `json:"item_id"`
	NudgeText string      `json:"nudge_text"`
}

// MoodLabel carries the three languages the ordering site ships.
type MoodLabel struct {
	En string `json:"en"`
	Si string `json:"si"`
	Ta string `json:"ta"`
}

// MoodOption is derived at request time from the category keyword mapping;
// it is never persisted.
type MoodOption struct {
	ID      string    `json:"id"`
	Label   MoodLabel `json:"label"`
	ItemIDs []string  `json:"item_ids"`
}

// DisplayPlan is what the ordering UI consumes for one render pass.
type DisplayPlan struct {
	CategoryOrder []string                    `json:"category_order"`
	ItemHints     map[string]ItemDisplayHints `json:"item_hints"`
	Moods         []MoodOption                `json:"moods"`
	Bundles       []BundleHint                `json:"bundles"`
}

// CartState is the guest's in-flight order as reported by the client,
// consumed by upsell sequencing.
type CartState struct {
	ItemIDs         []string      `json:"item_ids"`
	IdleSeconds     int           `json:"idle_seconds"`
	ClaimedStages   []UpsellStage `json:"claimed_stages"`
	DismissedStages []UpsellStage `json:"dismissed_stages"`
}
