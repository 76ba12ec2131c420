package engine

import (
	"sort"
	"strings"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

const (
	MoodLight   = "light"
	MoodFilling = "filling"
	MoodSharing = "sharing"
	MoodPremium = "premium"
)

// moodDefs maps the four fixed moods to category keywords. Premium has no
// keywords; it draws from STAR-quadrant items and the high-price band
// instead.
var moodDefs = []struct {
	id       string
	label    models.MoodLabel
	keywords []string
}{
	{
		id:       MoodLight,
		label:    models.MoodLabel{En: "Something light", Si: "සැහැල්ලු දෙයක්", Ta: "லேசான உணவு"},
		keywords: []string{"salad", "soup", "starter", "appetizer", "light"},
	},
	{
		id:       MoodFilling,
		label:    models.MoodLabel{En: "Properly filling", Si: "බඩ පිරෙන කෑම", Ta: "வயிறு நிறைய"},
		keywords: []string{"main", "rice", "kottu", "curry", "burger", "pizza", "pasta", "biryani"},
	},
	{
		id:       MoodSharing,
		label:    models.MoodLabel{En: "For the table", Si: "බෙදාගෙන කන්න", Ta: "பகிர்ந்து உண்ண"},
		keywords: []string{"platter", "sharing", "family", "combo", "side"},
	},
	{
		id:    MoodPremium,
		label: models.MoodLabel{En: "Treat yourself", Si: "විශේෂ අත්දැකීමක්", Ta: "சிறப்பு விருந்து"},
	},
}

// buildMoods intersects the mood keyword mapping against the restaurant's
// categories. Moods with no matching items are dropped rather than rendered
// empty.
func (e *Engine) buildMoods(items []*models.MenuItem, categories []*models.Category, scored map[string]*scoredItem, settings models.EngineSettings) []models.MoodOption {
	if !settings.MoodFlow {
		return nil
	}

	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = strings.ToLower(cat.Name)
	}

	premiumFloor := priceQuantile(items, e.cfg.PremiumPriceQuantile)

	var moods []models.MoodOption
	for _, def := range moodDefs {
		var ids []string
		for _, item := range items {
			if def.id == MoodPremium {
				si := scored[item.ID]
				if (si != nil && si.quadrant == quadrantStar) || item.Price >= premiumFloor {
					ids = append(ids, item.ID)
				}
				continue
			}
			if matchesKeywords(categoryNames[item.CategoryID], def.keywords) {
				ids = append(ids, item.ID)
			}
		}
		if len(ids) == 0 {
			continue
		}
		sort.Strings(ids)
		moods = append(moods, models.MoodOption{ID: def.id, Label: def.label, ItemIDs: ids})
	}
	return moods
}

func matchesKeywords(categoryName string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(categoryName, kw) {
			return true
		}
	}
	return false
}

// priceQuantile returns the price at or above which the given fraction of
// the menu sits below. Quantile 0.8 over ten items returns the ninth price.
func priceQuantile(items []*models.MenuItem, q float64) float64 {
	if len(items) == 0 {
		return 0
	}
	prices := make([]float64, len(items))
	for i, item := range items {
		prices[i] = item.Price
	}
	sort.Float64s(prices)
	idx := int(q * float64(len(prices)))
	if idx >= len(prices) {
		idx = len(prices) - 1
	}
	return prices[idx]
}
