package engine

import (
	"sort"
	"strings"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

// Experiment ids the hint generator branches on. Assignment lives in the
// experiments package; the engine only consumes the resolved variant map.
const (
	ExperimentPriceFormat     = "price_format"
	ExperimentPhotoVisibility = "photo_visibility"
	ExperimentUpsellStrategy  = "upsell_strategy"
)

var tierRank = map[models.DisplayTier]int{
	models.TierHero:     0,
	models.TierFeatured: 1,
	models.TierStandard: 2,
	models.TierMinimal:  3,
}

var quadrantTier = map[quadrant]models.DisplayTier{
	quadrantStar:      models.TierHero,
	quadrantWorkhorse: models.TierFeatured,
	quadrantPuzzle:    models.TierStandard,
	quadrantDog:       models.TierMinimal,
}

// categoryKeywordPriority re-ranks tied categories in profit mode so that
// course types with stronger margin profiles surface earlier.
var categoryKeywordPriority = []struct {
	keyword string
	rank    int
}{
	{"appetizer", 0},
	{"starter", 0},
	{"salad", 1},
	{"soup", 1},
	{"main", 2},
	{"rice", 2},
	{"kottu", 2},
	{"curry", 2},
	{"dessert", 3},
	{"sweet", 3},
	{"drink", 4},
	{"beverage", 4},
	{"side", 5},
}

const scarcityBadgeText = "Chef's special"

// GeneratePlan computes the category order, one display hint per visible
// item, and the mood options for a single render pass. Bundles are filled in
// by the caller from SynthesizeBundles so the hint pass stays independent of
// order history. The result is deterministic for a given input snapshot.
func (e *Engine) GeneratePlan(items []*models.MenuItem, categories []*models.Category, settings models.EngineSettings, variants map[string]string) models.DisplayPlan {
	available := make([]*models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}

	scored := classify(available)
	moods := e.buildMoods(available, categories, scored, settings)

	moodsByItem := make(map[string][]string)
	for _, mood := range moods {
		for _, id := range mood.ItemIDs {
			moodsByItem[id] = append(moodsByItem[id], mood.ID)
		}
	}

	plan := models.DisplayPlan{
		CategoryOrder: orderCategories(categories, settings.Mode),
		ItemHints:     make(map[string]models.ItemDisplayHints, len(available)),
		Moods:         moods,
		Bundles:       []models.BundleHint{},
	}

	priceVariant := variants[ExperimentPriceFormat]
	hidePhotos := variants[ExperimentPhotoVisibility] == "hide"

	byCategory := make(map[string][]*models.MenuItem)
	for _, item := range available {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	for _, catItems := range byCategory {
		sortForDisplay(catItems, scored, settings.Mode)

		visible := catItems
		if len(visible) > settings.MaxItemsPerCategory {
			// past the see-more cap, not visible this pass
			visible = visible[:settings.MaxItemsPerCategory]
		}

		anchorID := ""
		if settings.PriceAnchoring {
			anchorID = priciestItem(visible)
		}

		for pos, item := range visible {
			si := scored[item.ID]
			tier := models.TierStandard
			if settings.Mode != models.EngineModeClassic {
				tier = quadrantTier[si.quadrant]
			}

			hint := models.ItemDisplayHints{
				ItemID:    item.ID,
				Tier:      tier,
				Position:  pos + 1,
				ShowImage: item.HasImage(),
				PriceText: FormatPrice(item.Price, priceVariant),
				MoodTags:  moodsByItem[item.ID],
			}
			if tier == models.TierMinimal && hidePhotos {
				hint.ShowImage = false
			}
			if tier == models.TierMinimal || pos >= settings.MaxInitialItemsPerCategory {
				hint.HideBelowFold = true
			}
			if settings.ScarcityBadges && si.quadrant == quadrantPuzzle {
				hint.BadgeText = scarcityBadgeText
				hint.LimitedToday = true
			}
			if item.ID == anchorID {
				// anchors render unreduced so the rest of the category reads
				// as a relative bargain
				hint.IsAnchor = true
				hint.PriceText = FormatPrice(item.Price, "")
			}
			if tags := moodsByItem[item.ID]; len(tags) > 0 {
				hint.Subgroup = tags[0]
			}
			plan.ItemHints[item.ID] = hint
		}
	}

	return plan
}

// sortForDisplay orders a category's items by tier rank, then popularity
// score descending, then name ascending for full determinism. Classic mode
// skips the tier axis since every item renders standard.
func sortForDisplay(items []*models.MenuItem, scored map[string]*scoredItem, mode models.EngineMode) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := scored[items[i].ID], scored[items[j].ID]
		if mode != models.EngineModeClassic {
			ra, rb := tierRank[quadrantTier[a.quadrant]], tierRank[quadrantTier[b.quadrant]]
			if ra != rb {
				return ra < rb
			}
		}
		if a.popularity != b.popularity {
			return a.popularity > b.popularity
		}
		return items[i].Name < items[j].Name
	})
}

func priciestItem(items []*models.MenuItem) string {
	id := ""
	best := -1.0
	for _, item := range items {
		if item.Price > best || (item.Price == best && item.ID < id) {
			best = item.Price
			id = item.ID
		}
	}
	return id
}

// orderCategories sorts categories by ascending display order. Profit mode
// additionally breaks ties (including absent orders) with the course-type
// keyword table, then name ascending.
func orderCategories(categories []*models.Category, mode models.EngineMode) []string {
	sorted := make([]*models.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DisplayOrder != sorted[j].DisplayOrder {
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		}
		if mode == models.EngineModeProfit {
			ri, rj := keywordRank(sorted[i].Name), keywordRank(sorted[j].Name)
			if ri != rj {
				return ri < rj
			}
		}
		return sorted[i].Name < sorted[j].Name
	})

	order := make([]string, len(sorted))
	for i, cat := range sorted {
		order[i] = cat.ID
	}
	return order
}

func keywordRank(categoryName string) int {
	name := strings.ToLower(categoryName)
	best := len(categoryKeywordPriority) + 1
	for _, entry := range categoryKeywordPriority {
		if strings.Contains(name, entry.keyword) && entry.rank < best {
			best = entry.rank
		}
	}
	return best
}
