// Package style maps a VibeProfile to ranked fashion archetypes, a color
// palette, and styling guidance.
package style

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/drip-agent/internal/colorseason"
	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/prompts"
	"github.com/jonathan/drip-agent/internal/schemas"
	"github.com/jonathan/drip-agent/internal/types"
)

// Resolver picks archetypes and styling guidance with one inference call.
// It never fails the job: unusable inference output degrades to a fixed
// default recommendation.
type Resolver struct {
	client  llm.Client
	verbose bool
}

// NewResolver creates a style resolver using the given client.
func NewResolver(client llm.Client, verbose bool) *Resolver {
	return &Resolver{client: client, verbose: verbose}
}

// rawRecommendation matches the model's response before budget-tier
// coercion.
type rawRecommendation struct {
	PrimaryArchetype   string   `json:"primary_archetype"`
	SecondaryArchetype string   `json:"secondary_archetype"`
	ColorPalette       []string `json:"color_palette"`
	StyleNotes         string   `json:"style_notes"`
	Avoid              []string `json:"avoid"`
	GenderNotes        string   `json:"gender_notes"`
	ProfessionTips     string   `json:"profession_tips"`
	SeasonalNotes      string   `json:"seasonal_notes"`
	ColorSeasonPalette []string `json:"color_season_palette"`
	BudgetTier         string   `json:"budget_tier"`
	SignaturePieces    []string `json:"signature_pieces"`
}

// Resolve produces a style recommendation for a vibe, seeded with the
// catalog's archetype list. Archetype names in the result are not validated
// against the list; a hallucinated name degrades gracefully downstream.
func (r *Resolver) Resolve(ctx context.Context, vibe *types.VibeProfile, archetypes []types.Archetype) *types.StyleRecommendation {
	system := prompts.Format(prompts.MustGet("style.json", "resolve-system"), map[string]string{
		"Archetypes":         formatArchetypes(archetypes),
		"ProfessionGuidance": guidanceFor(vibe.Profession),
	})
	user := prompts.Format(prompts.MustGet("style.json", "resolve-user"), map[string]string{
		"VibeSummary":        vibe.VibeSummary,
		"Energy":             vibe.Energy,
		"AestheticKeywords":  strings.Join(vibe.AestheticKeywords, ", "),
		"PersonalityTraits":  strings.Join(vibe.PersonalityTraits, ", "),
		"Interests":          strings.Join(vibe.Interests, ", "),
		"CommunicationStyle": vibe.CommunicationStyle,
		"Gender":             string(vibe.Gender),
		"Profession":         string(vibe.Profession),
		"Weather":            formatWeather(vibe.Weather),
		"ColorSeason":        formatColorSeason(vibe.ColorSeason),
	})

	rec := r.resolveViaModel(ctx, system, user)
	if rec == nil {
		rec = fallbackRecommendation(vibe.Profession)
	}

	// A color-season palette computed upstream beats nothing at all.
	if vibe.ColorSeason != nil && len(rec.ColorSeasonPalette) == 0 {
		rec.ColorSeasonPalette = paletteFromColorNames(vibe.ColorSeason.BestColors)
	}

	return rec
}

func (r *Resolver) resolveViaModel(ctx context.Context, system, user string) *types.StyleRecommendation {
	response, err := r.client.Complete(ctx, system, user, llm.TierAdvanced,
		llm.Options{JSONMode: true, Temperature: 0.7})
	if err != nil {
		if r.verbose {
			log.Printf("[STYLE] inference failed, using fallback: %v", err)
		}
		return nil
	}

	if err := schemas.Validate(schemas.Style, []byte(response)); err != nil {
		if r.verbose {
			log.Printf("[STYLE] response failed validation, using fallback: %v", err)
		}
		return nil
	}

	var raw rawRecommendation
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return nil
	}

	return &types.StyleRecommendation{
		PrimaryArchetype:   raw.PrimaryArchetype,
		SecondaryArchetype: raw.SecondaryArchetype,
		ColorPalette:       raw.ColorPalette,
		StyleNotes:         raw.StyleNotes,
		Avoid:              raw.Avoid,
		GenderNotes:        raw.GenderNotes,
		ProfessionTips:     raw.ProfessionTips,
		SeasonalNotes:      raw.SeasonalNotes,
		ColorSeasonPalette: raw.ColorSeasonPalette,
		BudgetTier:         types.ParseBudgetTier(raw.BudgetTier),
		SignaturePieces:    raw.SignaturePieces,
	}
}

// fallbackRecommendation is the fixed default used when inference is
// unavailable or unusable.
func fallbackRecommendation(profession types.ProfessionArchetype) *types.StyleRecommendation {
	return &types.StyleRecommendation{
		PrimaryArchetype:   "Minimalist",
		SecondaryArchetype: "Streetwear",
		ColorPalette:       []string{"#000000", "#ffffff", "#808080", "#1a1a1a"},
		StyleNotes:         "Clean, versatile pieces that match your energy.",
		Avoid:              []string{"Overly loud patterns", "Ill-fitting clothes", "Fast fashion"},
		BudgetTier:         types.BudgetMixed,
		SignaturePieces:    SignatureItemsFor(profession),
	}
}

// paletteFromColorNames maps best-color names to hex values.
func paletteFromColorNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	palette := make([]string, 0, len(names))
	for _, name := range names {
		palette = append(palette, colorseason.HexForColor(name))
	}
	return palette
}

func formatArchetypes(archetypes []types.Archetype) string {
	if len(archetypes) == 0 {
		return "(no archetype catalog available)"
	}
	var b strings.Builder
	for _, a := range archetypes {
		fmt.Fprintf(&b, "- %s: %s\n", a.Name, a.Description)
	}
	return b.String()
}

func formatWeather(data *types.WeatherData) string {
	if data == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d°C, %s in %s (%s)", data.Temperature, data.Condition, data.Location, data.Season)
}

func formatColorSeason(profile *types.ColorProfile) string {
	if profile == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s undertone, %s contrast); best colors: %s",
		profile.Subtype, profile.Undertone, profile.Contrast,
		strings.Join(profile.BestColors, ", "))
}
