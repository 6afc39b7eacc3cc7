package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/drip-agent/internal/style"
	"github.com/jonathan/drip-agent/internal/types"
)

const maxOutfits = 3

// buildOutfits groups ranked products by category and assembles one outfit
// per profession-specific occasion, round-robining through each category's
// list. Returns nil when fewer than 3 candidates exist.
func buildOutfits(ranked []types.ScoredProduct, profession types.ProfessionArchetype, styleNotes string) []types.OutfitSuggestion {
	if len(ranked) < 3 {
		return nil
	}

	// Group by category, preserving rank order within each.
	var categories []string
	byCategory := map[string][]types.ScoredProduct{}
	for _, p := range ranked {
		if _, ok := byCategory[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	occasions := style.OccasionsFor(profession)
	clause := firstClause(styleNotes)

	var outfits []types.OutfitSuggestion
	for i := 0; i < maxOutfits; i++ {
		occasion := occasions[i]

		var ids []string
		for _, cat := range categories {
			list := byCategory[cat]
			ids = append(ids, list[i%len(list)].ID)
		}
		if len(ids) == 0 {
			continue
		}

		outfits = append(outfits, types.OutfitSuggestion{
			Name:       fmt.Sprintf("The %s look", occasion),
			Occasion:   occasion,
			ProductIDs: ids,
			StylingTip: fmt.Sprintf("For %s: %s.", occasion, clause),
		})
	}
	return outfits
}

// firstClause returns the style notes up to the first sentence or clause
// boundary.
func firstClause(notes string) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return "keep it simple and intentional"
	}
	if idx := strings.IndexAny(notes, ".;"); idx > 0 {
		notes = notes[:idx]
	}
	return strings.TrimSuffix(notes, ".")
}
