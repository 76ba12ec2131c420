package engine

import (
	"sort"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

// quadrant is the menu-engineering bucket for an item. It is internal to the
// classification stage: margin and cost data are server-only and the raw
// bucket never reaches the client.
type quadrant int

const (
	quadrantStar quadrant = iota
	quadrantWorkhorse
	quadrantPuzzle
	quadrantDog
)

type scoredItem struct {
	item       *models.MenuItem
	margin     float64 // min-max scaled within the item set
	popularity float64 // min-max scaled within the item set
	costKnown  bool
	quadrant   quadrant
}

// classify scores every item and buckets it into a quadrant using a 2x2 split
// at the lower median of each axis. A score exactly at the split point counts
// as high, so an item sitting on both medians lands in STAR; this is the
// documented tie-break. Items without a computable cost are excluded from
// margin scoring and always take the low-margin buckets.
func classify(items []*models.MenuItem) map[string]*scoredItem {
	scored := make(map[string]*scoredItem, len(items))
	if len(items) == 0 {
		return scored
	}

	var marginRates []float64
	var popularities []float64
	for _, item := range items {
		si := &scoredItem{item: item}
		if cost, ok := item.UnitCost(); ok && item.Price > 0 {
			si.costKnown = true
			si.margin = (item.Price - cost) / item.Price
			marginRates = append(marginRates, si.margin)
		}
		si.popularity = item.Popularity
		popularities = append(popularities, si.popularity)
		scored[item.ID] = si
	}

	marginMin, marginMax := minMax(marginRates)
	popMin, popMax := minMax(popularities)

	var marginScores, popScores []float64
	for _, si := range scored {
		if si.costKnown {
			si.margin = rescale(si.margin, marginMin, marginMax)
			marginScores = append(marginScores, si.margin)
		} else {
			si.margin = 0
		}
		si.popularity = rescale(si.popularity, popMin, popMax)
		popScores = append(popScores, si.popularity)
	}

	marginSplit := lowerMedian(marginScores)
	popSplit := lowerMedian(popScores)

	for _, si := range scored {
		marginHigh := si.costKnown && si.margin >= marginSplit
		popHigh := si.popularity >= popSplit
		switch {
		case popHigh && marginHigh:
			si.quadrant = quadrantStar
		case popHigh:
			si.quadrant = quadrantWorkhorse
		case marginHigh:
			si.quadrant = quadrantPuzzle
		default:
			si.quadrant = quadrantDog
		}
	}
	return scored
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func rescale(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// lowerMedian returns the lower middle element of the sorted values. Using
// the lower median keeps the high side inclusive on small menus: with two
// scored items both count as high rather than one being arbitrarily demoted.
func lowerMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[(len(sorted)-1)/2]
}
