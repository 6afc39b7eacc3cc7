package matching

import (
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// Score modifiers, applied to a base of 50 and clamped to [0,100].
const (
	scoreBase = 50

	genderMismatchPenalty = -80
	genderExactBonus      = 25
	genderUnisexBonus     = 10

	primaryArchetypeBonus   = 20
	secondaryArchetypeBonus = 10

	colorTagBonus = 10

	weightClashPenalty = -15
	weightExactBonus   = 10

	budgetFitBonus = 10
)

// scoreProduct computes the multi-factor match score for one candidate.
func scoreProduct(product types.Product, style *types.StyleRecommendation, vibe *types.VibeProfile) types.ScoredProduct {
	scored := types.ScoredProduct{
		Product:           product,
		GenderMatch:       true,
		SeasonAppropriate: true,
	}
	score := scoreBase

	// Gender.
	if product.Gender != "" && product.Gender != "unisex" {
		if vibe.Gender.Known() && string(vibe.Gender) != product.Gender {
			score += genderMismatchPenalty
			scored.GenderMatch = false
		} else if string(vibe.Gender) == product.Gender {
			score += genderExactBonus
		}
	} else if product.Gender == "unisex" {
		score += genderUnisexBonus
	}

	// Archetype.
	primary := NormalizeArchetype(style.PrimaryArchetype)
	secondary := NormalizeArchetype(style.SecondaryArchetype)
	for _, tag := range product.StyleArchetypes {
		if tag == primary {
			score += primaryArchetypeBonus
		}
		if tag == secondary {
			score += secondaryArchetypeBonus
		}
	}

	// Color: one bonus per candidate color tag with a qualifying best-color
	// pair (substring containment in either direction).
	if vibe.ColorSeason != nil {
		for _, tag := range product.Colors {
			if matchesAnyColor(tag, vibe.ColorSeason.BestColors) {
				score += colorTagBonus
				scored.ColorMatch = true
			}
		}
	}

	// Season: opposite clothing-weight extremes clash; exact match helps.
	if vibe.Seasonal != nil && product.Weight != "" {
		want := vibe.Seasonal.ClothingWeight
		switch {
		case oppositeWeights(want, product.Weight):
			score += weightClashPenalty
			scored.SeasonAppropriate = false
		case want == product.Weight:
			score += weightExactBonus
		}
	}

	// Budget tier.
	switch style.BudgetTier {
	case types.BudgetLuxury:
		if product.Price >= 200 {
			score += budgetFitBonus
		}
	case types.BudgetAccessible:
		if product.Price <= 100 {
			score += budgetFitBonus
		}
	case types.BudgetMidRange:
		if product.Price >= 80 && product.Price <= 250 {
			score += budgetFitBonus
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	scored.MatchScore = score
	return scored
}

func matchesAnyColor(tag string, bestColors []string) bool {
	tag = strings.ToLower(tag)
	for _, name := range bestColors {
		name = strings.ToLower(name)
		if strings.Contains(tag, name) || strings.Contains(name, tag) {
			return true
		}
	}
	return false
}

func oppositeWeights(a, b types.ClothingWeight) bool {
	return (a == types.WeightHeavy && b == types.WeightLight) ||
		(a == types.WeightLight && b == types.WeightHeavy)
}
