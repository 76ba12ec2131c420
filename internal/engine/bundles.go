package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/lucsky/cuid"
)

type bundleCandidate struct {
	a, b       string
	confidence float64
}

// SynthesizeBundles derives discounted pairings from co-purchase history.
// Confidence is directional, P(B|A) = |orders with A and B| / |orders with A|;
// a pair qualifies when either direction clears the settings threshold. The
// function short-circuits when bundles are disabled: classic mode performs no
// computation here by contract, not by coincidence.
func (e *Engine) SynthesizeBundles(orders []*models.Order, items []*models.MenuItem, settings models.EngineSettings) []models.BundleHint {
	if !settings.Bundles {
		return nil
	}

	byID := make(map[string]*models.MenuItem, len(items))
	for _, item := range items {
		if item.Available {
			byID[item.ID] = item
		}
	}

	itemOrders := make(map[string]int)
	pairOrders := make(map[[2]string]int)
	for _, order := range orders {
		if !order.Completed() {
			continue
		}
		seen := uniqueKnownItems(order.ItemIDs, byID)
		for i, a := range seen {
			itemOrders[a]++
			for _, b := range seen[i+1:] {
				pairOrders[pairKey(a, b)]++
			}
		}
	}

	var candidates []bundleCandidate
	for pair, co := range pairOrders {
		a, b := pair[0], pair[1]
		conf := math.Max(
			float64(co)/float64(itemOrders[a]),
			float64(co)/float64(itemOrders[b]),
		)
		if conf >= settings.BundleCorrelationThreshold {
			candidates = append(candidates, bundleCandidate{a: a, b: b, confidence: conf})
		}
	}

	// deterministic surface order, then a greedy cap: an item appears in at
	// most one bundle, strongest correlation first
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].confidence != candidates[j].confidence {
			return candidates[i].confidence > candidates[j].confidence
		}
		if candidates[i].a != candidates[j].a {
			return candidates[i].a < candidates[j].a
		}
		return candidates[i].b < candidates[j].b
	})

	used := make(map[string]bool)
	var bundles []models.BundleHint
	for _, cand := range candidates {
		if used[cand.a] || used[cand.b] {
			continue
		}
		used[cand.a], used[cand.b] = true, true

		first, second := byID[cand.a], byID[cand.b]
		original := first.Price + second.Price
		discounted := math.Round(original*(1-e.cfg.BundleDiscountPercentage)*100) / 100

		bundles = append(bundles, models.BundleHint{
			ID:            cuid.New(),
			Name:          fmt.Sprintf("%s + %s", first.Name, second.Name),
			ItemIDs:       []string{cand.a, cand.b},
			BundlePrice:   discounted,
			OriginalPrice: original,
			SavingsText:   fmt.Sprintf("Save %s", formatAmount(original-discounted)),
		})
	}
	return bundles
}

// uniqueKnownItems dedupes an order's line items and drops ids that no
// longer resolve to an available menu item, returning a sorted slice so pair
// iteration is deterministic.
func uniqueKnownItems(ids []string, byID map[string]*models.MenuItem) []string {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; ok {
			set[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
