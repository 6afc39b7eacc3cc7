package matching

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/prompts"
	"github.com/jonathan/drip-agent/internal/types"
)

const reasonConcurrency = 4

// attachMatchReasons fills in a one-sentence personalized reason for every
// scored product. Inference failures degrade per product to a templated
// sentence; this never fails.
func (m *Matcher) attachMatchReasons(ctx context.Context, scored []types.ScoredProduct, style *types.StyleRecommendation, vibe *types.VibeProfile) {
	if m.client == nil {
		for i := range scored {
			scored[i].MatchReason = fallbackReason(style, vibe)
		}
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reasonConcurrency)
	for i := range scored {
		g.Go(func() error {
			reason, err := m.generateReason(gctx, &scored[i].Product, style, vibe)
			if err != nil {
				if m.verbose {
					log.Printf("[MATCH] reason generation failed for %s: %v", scored[i].ID, err)
				}
				reason = fallbackReason(style, vibe)
			}
			scored[i].MatchReason = reason
			return nil
		})
	}
	_ = g.Wait()
}

func (m *Matcher) generateReason(ctx context.Context, product *types.Product, style *types.StyleRecommendation, vibe *types.VibeProfile) (string, error) {
	system := prompts.MustGet("shopping.json", "match-reason-system")
	user := prompts.Format(prompts.MustGet("shopping.json", "match-reason-user"), map[string]string{
		"ProductName":      product.Name,
		"Brand":            product.Brand,
		"Gender":           string(vibe.Gender),
		"Profession":       string(vibe.Profession),
		"Energy":           vibe.Energy,
		"PrimaryArchetype": style.PrimaryArchetype,
	})

	reason, err := m.client.Complete(ctx, system, user, llm.TierLite, llm.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reason), nil
}

// fallbackReason is the templated sentence used when inference is
// unavailable.
func fallbackReason(style *types.StyleRecommendation, vibe *types.VibeProfile) string {
	keyword := "signature"
	if len(vibe.AestheticKeywords) > 0 {
		keyword = vibe.AestheticKeywords[0]
	}
	return fmt.Sprintf("Perfect match for your %s aesthetic with that %s edge.",
		style.PrimaryArchetype, keyword)
}
