// Package matching retrieves catalog candidates for a style recommendation,
// scores and ranks them, splits them into free/premium tiers, and derives
// outfit groupings.
package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/types"
)

// Candidate-gathering caps per tier.
const (
	genderTierCap = 10
	unisexTierCap = 8
	fillTarget    = 10
	minCandidates = 6
	freeTierCount = 3
)

// Catalog is the read-only product store the matcher queries.
type Catalog interface {
	// QueryProducts returns products whose archetype tags intersect the given
	// set, restricted to an exact gender tag when gender is non-empty.
	QueryProducts(ctx context.Context, archetypes []string, gender string, limit int) ([]types.Product, error)
	// ListProducts returns the whole catalog, for fallback expansion.
	ListProducts(ctx context.Context) ([]types.Product, error)
}

// Matcher scores catalog products against a user's style profile.
type Matcher struct {
	catalog Catalog
	client  llm.Client
	verbose bool
}

// NewMatcher creates a matcher over a catalog. client may be nil, in which
// case every match reason uses the templated fallback.
func NewMatcher(catalog Catalog, client llm.Client, verbose bool) *Matcher {
	return &Matcher{catalog: catalog, client: client, verbose: verbose}
}

// Match produces ranked free/premium recommendations and outfit suggestions.
func (m *Matcher) Match(ctx context.Context, style *types.StyleRecommendation, vibe *types.VibeProfile) (*types.ShoppingResult, error) {
	candidates, err := m.gatherCandidates(ctx, style, vibe)
	if err != nil {
		return nil, fmt.Errorf("candidate gathering failed: %w", err)
	}

	scored := make([]types.ScoredProduct, 0, len(candidates))
	for _, product := range candidates {
		scored = append(scored, scoreProduct(product, style, vibe))
	}

	m.attachMatchReasons(ctx, scored, style, vibe)

	// Stable sort preserves gathering order for ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	result := &types.ShoppingResult{}
	split := freeTierCount
	if split > len(scored) {
		split = len(scored)
	}
	result.FreeRecommendations = scored[:split]
	result.PremiumRecommendations = scored[split:]
	result.Outfits = buildOutfits(scored, vibe.Profession, style.StyleNotes)

	return result, nil
}

// gatherCandidates applies the four-tier gathering policy, deduplicating by
// id as each tier is appended.
func (m *Matcher) gatherCandidates(ctx context.Context, style *types.StyleRecommendation, vibe *types.VibeProfile) ([]types.Product, error) {
	archetypes := []string{
		NormalizeArchetype(style.PrimaryArchetype),
		NormalizeArchetype(style.SecondaryArchetype),
	}
	gender := string(vibe.Gender)
	genderKnown := vibe.Gender.Known()

	var candidates []types.Product
	seen := map[string]bool{}
	appendNew := func(products []types.Product, limit int) {
		for _, p := range products {
			if len(candidates) >= limit {
				return
			}
			if !seen[p.ID] {
				seen[p.ID] = true
				candidates = append(candidates, p)
			}
		}
	}

	// Tier 1: exact gender tag + archetype match.
	if genderKnown {
		matched, err := m.catalog.QueryProducts(ctx, archetypes, gender, genderTierCap)
		if err != nil {
			return nil, err
		}
		appendNew(matched, genderTierCap)
	}

	// Tier 2: unisex + archetype match.
	unisex, err := m.catalog.QueryProducts(ctx, archetypes, "unisex", unisexTierCap)
	if err != nil {
		return nil, err
	}
	appendNew(unisex, len(candidates)+unisexTierCap)

	// Tier 3: gender-compatible entries regardless of archetype.
	if len(candidates) < minCandidates && genderKnown {
		all, err := m.catalog.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		var compatible []types.Product
		for _, p := range all {
			if p.Gender == gender || p.Gender == "unisex" || p.Gender == "" {
				compatible = append(compatible, p)
			}
		}
		appendNew(compatible, fillTarget)
	}

	// Tier 4: anything at all.
	if len(candidates) < minCandidates {
		all, err := m.catalog.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		appendNew(all, fillTarget)
	}

	return candidates, nil
}

// NormalizeArchetype lowercases an archetype name and replaces spaces with
// hyphens, matching catalog tag format.
func NormalizeArchetype(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
