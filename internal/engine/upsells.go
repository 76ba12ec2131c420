package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
)

// stageOrder is the fixed sequence upsells advance through. Sequential
// strategy offers one stage at a time; a stage must be accepted or dismissed
// before the next surfaces.
var stageOrder = []models.UpsellStage{
	models.StageProteinUpgrade,
	models.StagePremiumSide,
	models.StageBeverage,
	models.StageDessert,
}

var stageKeywords = map[models.UpsellStage][]string{
	models.StagePremiumSide: {"side", "salad", "fries", "sambol"},
	models.StageBeverage:    {"drink", "beverage", "juice", "shake", "tea"},
	models.StageDessert:     {"dessert", "sweet", "ice cream"},
}

var mainCourseKeywords = []string{"main", "rice", "kottu", "curry", "burger", "pizza", "biryani"}

// SynthesizeUpsells picks the next unclaimed stage (or, under the bundled
// strategy, every eligible stage) once the guest has idled past the
// configured delay. It short-circuits without computation when upsells are
// disabled.
func (e *Engine) SynthesizeUpsells(cart models.CartState, items []*models.MenuItem, categories []*models.Category, settings models.EngineSettings, variants map[string]string) []models.UpsellSuggestion {
	if !settings.Upsells {
		return nil
	}
	if cart.IdleSeconds < settings.IdleUpsellDelaySeconds || len(cart.ItemIDs) == 0 {
		return nil
	}

	byID := make(map[string]*models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	inCart := make(map[string]bool, len(cart.ItemIDs))
	for _, id := range cart.ItemIDs {
		inCart[id] = true
	}
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = strings.ToLower(cat.Name)
	}

	blocked := make(map[models.UpsellStage]bool)
	for _, stage := range cart.ClaimedStages {
		blocked[stage] = true
	}
	for _, stage := range cart.DismissedStages {
		blocked[stage] = true
	}

	bundled := variants[ExperimentUpsellStrategy] == "bundled"

	var suggestions []models.UpsellSuggestion
	for _, stage := range stageOrder {
		if blocked[stage] {
			continue
		}
		suggestion, ok := e.stageCandidate(stage, cart, items, byID, inCart, categoryNames)
		if !ok {
			continue // no eligible candidate, skip the stage
		}
		suggestions = append(suggestions, suggestion)
		if !bundled {
			break
		}
	}
	return suggestions
}

func (e *Engine) stageCandidate(stage models.UpsellStage, cart models.CartState, items []*models.MenuItem, byID map[string]*models.MenuItem, inCart map[string]bool, categoryNames map[string]string) (models.UpsellSuggestion, bool) {
	if stage == models.StageProteinUpgrade {
		return proteinUpgrade(cart, items, byID, inCart, categoryNames)
	}

	var best *models.MenuItem
	for _, item := range items {
		if !item.Available || inCart[item.ID] {
			continue
		}
		if !matchesKeywords(categoryNames[item.CategoryID], stageKeywords[stage]) {
			continue
		}
		if best == nil || item.Popularity > best.Popularity ||
			(item.Popularity == best.Popularity && item.Name < best.Name) {
			best = item
		}
	}
	if best == nil {
		return models.UpsellSuggestion{}, false
	}

	var nudge string
	switch stage {
	case models.StagePremiumSide:
		nudge = fmt.Sprintf("Add a %s on the side?", best.Name)
	case models.StageBeverage:
		nudge = fmt.Sprintf("Thirsty? A %s goes well with your order", best.Name)
	case models.StageDessert:
		nudge = fmt.Sprintf("Finish with %s?", best.Name)
	}
	return models.UpsellSuggestion{Stage: stage, ItemID: best.ID, NudgeText: nudge}, true
}

// proteinUpgrade looks for a pricier item in the same main-course category as
// something already in the cart, preferring the smallest step up.
func proteinUpgrade(cart models.CartState, items []*models.MenuItem, byID map[string]*models.MenuItem, inCart map[string]bool, categoryNames map[string]string) (models.UpsellSuggestion, bool) {
	sortedCart := make([]string, len(cart.ItemIDs))
	copy(sortedCart, cart.ItemIDs)
	sort.Strings(sortedCart)

	for _, cartID := range sortedCart {
		current, ok := byID[cartID]
		if !ok || !matchesKeywords(categoryNames[current.CategoryID], mainCourseKeywords) {
			continue
		}
		var upgrade *models.MenuItem
		for _, item := range items {
			if !item.Available || inCart[item.ID] || item.CategoryID != current.CategoryID {
				continue
			}
			if item.Price <= current.Price {
				continue
			}
			if upgrade == nil || item.Price < upgrade.Price ||
				(item.Price == upgrade.Price && item.Name < upgrade.Name) {
				upgrade = item
			}
		}
		if upgrade != nil {
			nudge := fmt.Sprintf("Make it a %s for %s more?", upgrade.Name, formatAmount(upgrade.Price-current.Price))
			return models.UpsellSuggestion{Stage: models.StageProteinUpgrade, ItemID: upgrade.ID, NudgeText: nudge}, true
		}
	}
	return models.UpsellSuggestion{}, false
}
