package engine

import (
	"reflect"
	"testing"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

func profitMenu() ([]*models.MenuItem, []*models.Category) {
	items := []*models.MenuItem{
		testItem("crab", "Crab Curry", "mains", 3800, 950, 0.95),
		testItem("kottu", "Chicken Kottu", "mains", 1400, 1100, 0.90),
		testItem("lamprais", "Lamprais", "mains", 2600, 800, 0.50),
		testItem("polos", "Polos Curry", "mains", 1600, 350, 0.20),
		testItem("roti", "Plain Roti", "mains", 600, 520, 0.10),
	}
	categories := []*models.Category{testCategory("mains", "Rice & Curry Mains", 1)}
	return items, categories
}

func TestGeneratePlanProfitMode(t *testing.T) {
	items, categories := profitMenu()
	settings := ResolveSettings(models.EngineModeProfit)
	eng := New(Config{})

	plan := eng.GeneratePlan(items, categories, settings, map[string]string{
		ExperimentPriceFormat: PriceFormatWhole,
	})

	if !reflect.DeepEqual(plan.CategoryOrder, []string{"mains"}) {
		t.Fatalf("unexpected category order %v", plan.CategoryOrder)
	}
	if len(plan.ItemHints) != len(items) {
		t.Fatalf("expected %d hints, got %d", len(items), len(plan.ItemHints))
	}

	wantPositions := map[string]int{"crab": 1, "lamprais": 2, "kottu": 3, "polos": 4, "roti": 5}
	for id, pos := range wantPositions {
		if got := plan.ItemHints[id].Position; got != pos {
			t.Errorf("item %s: got position %d, want %d", id, got, pos)
		}
	}

	wantTiers := map[string]models.DisplayTier{
		"crab":     models.TierHero,
		"lamprais": models.TierHero,
		"kottu":    models.TierFeatured,
		"polos":    models.TierStandard,
		"roti":     models.TierMinimal,
	}
	for id, tier := range wantTiers {
		if got := plan.ItemHints[id].Tier; got != tier {
			t.Errorf("item %s: got tier %s, want %s", id, got, tier)
		}
	}

	// the priciest visible item anchors the category and renders unrounded
	crab := plan.ItemHints["crab"]
	if !crab.IsAnchor {
		t.Error("crab should anchor the category")
	}
	if crab.PriceText != "3800.00" {
		t.Errorf("anchor price text = %q, want plain 3800.00", crab.PriceText)
	}
	if got := plan.ItemHints["lamprais"].PriceText; got != "2600" {
		t.Errorf("non-anchor price text = %q, want whole-format 2600", got)
	}

	// positions past the initial cap and the minimal tier fold
	for _, id := range []string{"crab", "lamprais", "kottu"} {
		if plan.ItemHints[id].HideBelowFold {
			t.Errorf("item %s should render above the fold", id)
		}
	}
	for _, id := range []string{"polos", "roti"} {
		if !plan.ItemHints[id].HideBelowFold {
			t.Errorf("item %s should fold", id)
		}
	}

	// scarcity badge goes to the high-margin low-popularity item only
	polos := plan.ItemHints["polos"]
	if polos.BadgeText != "Chef's special" || !polos.LimitedToday {
		t.Errorf("polos badge = %q limited=%v, want scarcity badge", polos.BadgeText, polos.LimitedToday)
	}
	for _, id := range []string{"crab", "kottu", "lamprais", "roti"} {
		if plan.ItemHints[id].BadgeText != "" {
			t.Errorf("item %s should carry no badge", id)
		}
	}
}

func TestGeneratePlanMoods(t *testing.T) {
	items, categories := profitMenu()
	settings := ResolveSettings(models.EngineModeProfit)
	eng := New(Config{})

	plan := eng.GeneratePlan(items, categories, settings, nil)

	if len(plan.Moods) != 2 {
		t.Fatalf("expected filling and premium moods, got %d", len(plan.Moods))
	}
	filling, premium := plan.Moods[0], plan.Moods[1]
	if filling.ID != MoodFilling || premium.ID != MoodPremium {
		t.Fatalf("unexpected mood ids %s, %s", filling.ID, premium.ID)
	}
	if len(filling.ItemIDs) != len(items) {
		t.Errorf("every rice-and-curry item belongs to filling, got %v", filling.ItemIDs)
	}
	if !reflect.DeepEqual(premium.ItemIDs, []string{"crab", "lamprais"}) {
		t.Errorf("premium items = %v, want crab and lamprais", premium.ItemIDs)
	}
	if filling.Label.En == "" || filling.Label.Si == "" || filling.Label.Ta == "" {
		t.Error("mood labels must carry all three languages")
	}
	if got := plan.ItemHints["crab"].Subgroup; got != MoodFilling {
		t.Errorf("crab subgroup = %q, want first mood tag", got)
	}
}

func TestGeneratePlanClassicMode(t *testing.T) {
	items, categories := profitMenu()
	settings := ResolveSettings(models.EngineModeClassic)
	eng := New(Config{})

	plan := eng.GeneratePlan(items, categories, settings, nil)

	if plan.Moods != nil {
		t.Errorf("classic mode renders no moods, got %v", plan.Moods)
	}
	pricesByID := make(map[string]float64, len(items))
	for _, item := range items {
		pricesByID[item.ID] = item.Price
	}

	wantPositions := map[string]int{"crab": 1, "kottu": 2, "lamprais": 3, "polos": 4, "roti": 5}
	for id, pos := range wantPositions {
		hint := plan.ItemHints[id]
		if hint.Position != pos {
			t.Errorf("item %s: got position %d, want popularity order %d", id, hint.Position, pos)
		}
		if hint.Tier != models.TierStandard {
			t.Errorf("item %s: classic mode renders tier %s, want standard", id, hint.Tier)
		}
		if hint.IsAnchor || hint.BadgeText != "" || hint.HideBelowFold {
			t.Errorf("item %s carries optimization hints in classic mode: %+v", id, hint)
		}
		if want := formatAmount(pricesByID[id]); hint.PriceText != want {
			t.Errorf("item %s: price text %q, want %q", id, hint.PriceText, want)
		}
	}
}

func TestGeneratePlanSkipsUnavailableItems(t *testing.T) {
	items, categories := profitMenu()
	soldOut := testItem("soldout", "Ambul Thiyal", "mains", 2200, 600, 0.7)
	soldOut.Available = false
	items = append(items, soldOut)

	plan := New(Config{}).GeneratePlan(items, categories, ResolveSettings(models.EngineModeProfit), nil)
	if _, ok := plan.ItemHints["soldout"]; ok {
		t.Error("unavailable items must not receive display hints")
	}
}

func TestGeneratePlanHonorsCategoryCap(t *testing.T) {
	items, categories := profitMenu()
	settings := ResolveSettings(models.EngineModeProfit)
	settings.MaxItemsPerCategory = 2

	plan := New(Config{}).GeneratePlan(items, categories, settings, nil)
	if len(plan.ItemHints) != 2 {
		t.Fatalf("expected 2 hints under the cap, got %d", len(plan.ItemHints))
	}
	for _, id := range []string{"crab", "lamprais"} {
		if _, ok := plan.ItemHints[id]; !ok {
			t.Errorf("top-tier item %s should survive the cap", id)
		}
	}
}

func TestGeneratePlanPhotoVisibilityVariant(t *testing.T) {
	items, categories := profitMenu()
	settings := ResolveSettings(models.EngineModeProfit)

	plan := New(Config{}).GeneratePlan(items, categories, settings, map[string]string{
		ExperimentPhotoVisibility: "hide",
	})
	if plan.ItemHints["roti"].ShowImage {
		t.Error("hide variant suppresses photos on minimal-tier items")
	}
	if !plan.ItemHints["crab"].ShowImage {
		t.Error("hide variant leaves higher tiers untouched")
	}

	control := New(Config{}).GeneratePlan(items, categories, settings, nil)
	if !control.ItemHints["roti"].ShowImage {
		t.Error("control variant keeps photos on items that have one")
	}
}

func TestOrderCategoriesProfitTieBreak(t *testing.T) {
	categories := []*models.Category{
		testCategory("des", "Desserts", 0),
		testCategory("sta", "Starters", 0),
		testCategory("dri", "Drinks", 0),
	}

	if got := orderCategories(categories, models.EngineModeProfit); !reflect.DeepEqual(got, []string{"sta", "des", "dri"}) {
		t.Errorf("profit tie-break order = %v, want starters before desserts before drinks", got)
	}
	if got := orderCategories(categories, models.EngineModeClassic); !reflect.DeepEqual(got, []string{"des", "dri", "sta"}) {
		t.Errorf("classic tie-break order = %v, want name ascending", got)
	}
}
