package engine

import (
	"reflect"
	"testing"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

func TestResolveSettingsIsReferentiallyTransparent(t *testing.T) {
	for _, mode := range []models.EngineMode{models.EngineModeClassic, models.EngineModeProfit, models.EngineModeAdaptive} {
		first := ResolveSettings(mode)
		second := ResolveSettings(mode)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("mode %s: settings differ between calls: %+v vs %+v", mode, first, second)
		}
	}
}

func TestResolveSettingsClassicDisablesEverything(t *testing.T) {
	settings := ResolveSettings(models.EngineModeClassic)

	if settings.MoodFlow || settings.Bundles || settings.Upsells || settings.ScarcityBadges || settings.PriceAnchoring {
		t.Errorf("classic must disable all suggestion features, got %+v", settings)
	}
	if settings.MaxItemsPerCategory != unlimitedItemCap || settings.MaxInitialItemsPerCategory != unlimitedItemCap {
		t.Errorf("classic caps must be effectively unlimited, got %d/%d",
			settings.MaxItemsPerCategory, settings.MaxInitialItemsPerCategory)
	}
}

func TestResolveSettingsOptimizedPreset(t *testing.T) {
	profit := ResolveSettings(models.EngineModeProfit)
	adaptive := ResolveSettings(models.EngineModeAdaptive)

	if !profit.MoodFlow || !profit.Bundles || !profit.Upsells || !profit.ScarcityBadges || !profit.PriceAnchoring {
		t.Errorf("profit must enable all suggestion features, got %+v", profit)
	}
	if profit.MaxItemsPerCategory != 7 || profit.MaxInitialItemsPerCategory != 3 {
		t.Errorf("unexpected item caps: %d/%d", profit.MaxItemsPerCategory, profit.MaxInitialItemsPerCategory)
	}
	if profit.IdleUpsellDelaySeconds != 6 {
		t.Errorf("unexpected idle delay: %d", profit.IdleUpsellDelaySeconds)
	}
	if profit.BundleCorrelationThreshold != 0.35 {
		t.Errorf("unexpected correlation threshold: %v", profit.BundleCorrelationThreshold)
	}

	// profit and adaptive share one preset; only the mode tag differs
	adaptive.Mode = profit.Mode
	if !reflect.DeepEqual(profit, adaptive) {
		t.Errorf("profit and adaptive presets diverged: %+v vs %+v", profit, adaptive)
	}
}

func TestResolveSettingsPanicsOnUnknownMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown mode")
		}
	}()
	ResolveSettings(models.EngineMode("turbo"))
}
