package engine

import (
	"reflect"
	"testing"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

func bundleMenu() []*models.MenuItem {
	return []*models.MenuItem{
		testItem("a", "Crab Curry", "mains", 1000, 300, 0.9),
		testItem("b", "Watalappan", "desserts", 500, 100, 0.6),
		testItem("c", "Lime Juice", "drinks", 300, 50, 0.8),
	}
}

// tenOrdersWithPair returns ten completed orders containing item a, four of
// which also contain b, so P(b|a)=0.4 clears the 0.35 preset threshold.
func tenOrdersWithPair() []*models.Order {
	var orders []*models.Order
	for i := 0; i < 4; i++ {
		orders = append(orders, completedOrder(string(rune('0'+i)), "a", "b"))
	}
	for i := 4; i < 10; i++ {
		orders = append(orders, completedOrder(string(rune('0'+i)), "a"))
	}
	return orders
}

func TestSynthesizeBundlesFromCoPurchases(t *testing.T) {
	eng := New(Config{BundleDiscountPercentage: 0.10})
	settings := ResolveSettings(models.EngineModeProfit)

	bundles := eng.SynthesizeBundles(tenOrdersWithPair(), bundleMenu(), settings)
	if len(bundles) != 1 {
		t.Fatalf("expected one bundle, got %d", len(bundles))
	}

	bundle := bundles[0]
	if bundle.ID == "" {
		t.Error("bundle needs a generated id")
	}
	if bundle.Name != "Crab Curry + Watalappan" {
		t.Errorf("bundle name = %q", bundle.Name)
	}
	if !reflect.DeepEqual(bundle.ItemIDs, []string{"a", "b"}) {
		t.Errorf("bundle items = %v, want [a b]", bundle.ItemIDs)
	}
	if bundle.OriginalPrice != 1500 {
		t.Errorf("original price = %v, want 1500", bundle.OriginalPrice)
	}
	if bundle.BundlePrice != 1350 {
		t.Errorf("bundle price = %v, want 1350 after 10%% off", bundle.BundlePrice)
	}
	if bundle.SavingsText != "Save 150.00" {
		t.Errorf("savings text = %q", bundle.SavingsText)
	}
}

func TestSynthesizeBundlesDirectionalConfidence(t *testing.T) {
	// b appears in only four orders total, all with a: P(a|b)=1.0 even
	// though P(b|a)=0.4, and either direction qualifying is enough
	eng := New(Config{})
	settings := ResolveSettings(models.EngineModeProfit)
	settings.BundleCorrelationThreshold = 0.9

	bundles := eng.SynthesizeBundles(tenOrdersWithPair(), bundleMenu(), settings)
	if len(bundles) != 1 {
		t.Fatalf("expected the reverse direction to qualify, got %d bundles", len(bundles))
	}
}

func TestSynthesizeBundlesGreedyOverlapCap(t *testing.T) {
	// a pairs strongly with both b and c; a may appear in only one bundle,
	// and the stronger correlation wins
	orders := []*models.Order{
		completedOrder("1", "a", "b"),
		completedOrder("2", "a", "b"),
		completedOrder("3", "a", "b"),
		completedOrder("4", "a", "c"),
		completedOrder("5", "a", "c"),
		completedOrder("6", "c"),
	}
	bundles := New(Config{}).SynthesizeBundles(orders, bundleMenu(), ResolveSettings(models.EngineModeProfit))
	if len(bundles) != 1 {
		t.Fatalf("expected a single bundle under the overlap cap, got %d", len(bundles))
	}
	if !reflect.DeepEqual(bundles[0].ItemIDs, []string{"a", "b"}) {
		t.Errorf("strongest pair should win, got %v", bundles[0].ItemIDs)
	}
}

func TestSynthesizeBundlesIgnoresIncompleteAndUnknown(t *testing.T) {
	menu := bundleMenu()
	orders := tenOrdersWithPair()
	for _, order := range orders {
		order.Status = models.OrderStatusCancelled
	}
	orders = append(orders, completedOrder("x", "a", "ghost"))

	bundles := New(Config{}).SynthesizeBundles(orders, menu, ResolveSettings(models.EngineModeProfit))
	if len(bundles) != 0 {
		t.Fatalf("cancelled orders and unknown items must not form bundles, got %v", bundles)
	}
}

func TestSynthesizeBundlesDisabled(t *testing.T) {
	bundles := New(Config{}).SynthesizeBundles(tenOrdersWithPair(), bundleMenu(), ResolveSettings(models.EngineModeClassic))
	if bundles != nil {
		t.Fatalf("classic mode must not synthesize bundles, got %v", bundles)
	}
}
