package style

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/types"
)

type mockClient struct {
	response string
	err      error
}

func (m *mockClient) Complete(context.Context, string, string, llm.ModelTier, llm.Options) (string, error) {
	return m.response, m.err
}
func (m *mockClient) GetModel(llm.ModelTier) string { return "mock" }
func (m *mockClient) Close() error                  { return nil }

const validStyleResponse = `{
	"primary_archetype": "Techwear",
	"secondary_archetype": "Minimalist",
	"color_palette": ["#000000", "#1a1a1a", "#333333", "#00ff00"],
	"style_notes": "Lean into technical fabrics. Keep silhouettes slim and layered.",
	"avoid": ["logos", "pastels", "baggy fits"],
	"gender_notes": "Slim tapered fits suit you",
	"profession_tips": "A technical blazer bridges standups and dinners",
	"seasonal_notes": "Waterproof outer layers for the rain",
	"budget_tier": "mid-range",
	"signature_pieces": ["shell jacket", "tapered cargos"]
}`

func testVibe() *types.VibeProfile {
	return &types.VibeProfile{
		VibeSummary:       "A builder who dresses like their terminal theme.",
		Energy:            "focused chaos",
		AestheticKeywords: []string{"minimal", "dark", "technical"},
		PersonalityTraits: []string{"driven"},
		Interests:         []string{"coffee"},
		Gender:            types.GenderMale,
		Profession:        types.ProfessionEngineer,
	}
}

func testArchetypes() []types.Archetype {
	return []types.Archetype{
		{ID: "techwear", Name: "Techwear", Description: "Functional, futuristic clothing."},
		{ID: "minimalist", Name: "Minimalist", Description: "Clean lines, neutral colors."},
	}
}

func TestResolve_Success(t *testing.T) {
	r := NewResolver(&mockClient{response: validStyleResponse}, false)

	rec := r.Resolve(context.Background(), testVibe(), testArchetypes())
	require.NotNil(t, rec)
	assert.Equal(t, "Techwear", rec.PrimaryArchetype)
	assert.Equal(t, "Minimalist", rec.SecondaryArchetype)
	assert.Equal(t, types.BudgetMidRange, rec.BudgetTier)
	assert.Len(t, rec.ColorPalette, 4)
}

func TestResolve_InferenceFailureFallsBack(t *testing.T) {
	r := NewResolver(&mockClient{err: errors.New("model unavailable")}, false)

	vibe := testVibe()
	vibe.Gender = types.GenderUnknown
	vibe.Profession = types.ProfessionGeneral

	rec := r.Resolve(context.Background(), vibe, testArchetypes())
	require.NotNil(t, rec)
	assert.Equal(t, "Minimalist", rec.PrimaryArchetype)
	assert.Equal(t, "Streetwear", rec.SecondaryArchetype)
	assert.Equal(t, types.BudgetMixed, rec.BudgetTier)
	assert.Equal(t, []string{"#000000", "#ffffff", "#808080", "#1a1a1a"}, rec.ColorPalette)
	assert.Equal(t, SignatureItemsFor(types.ProfessionGeneral), rec.SignaturePieces)
}

func TestResolve_GarbageResponseFallsBack(t *testing.T) {
	r := NewResolver(&mockClient{response: "sorry, I can't do that"}, false)

	rec := r.Resolve(context.Background(), testVibe(), testArchetypes())
	require.NotNil(t, rec)
	assert.Equal(t, "Minimalist", rec.PrimaryArchetype)
}

func TestResolve_SchemaViolationFallsBack(t *testing.T) {
	// color_palette too small for the schema's 3-6 bound.
	r := NewResolver(&mockClient{response: `{
		"primary_archetype": "Techwear",
		"secondary_archetype": "Minimalist",
		"color_palette": ["#000000"],
		"style_notes": "x",
		"avoid": []
	}`}, false)

	rec := r.Resolve(context.Background(), testVibe(), testArchetypes())
	assert.Equal(t, "Minimalist", rec.PrimaryArchetype)
}

func TestResolve_DerivesColorSeasonPalette(t *testing.T) {
	r := NewResolver(&mockClient{response: validStyleResponse}, false)

	vibe := testVibe()
	vibe.ColorSeason = &types.ColorProfile{
		Subtype:    types.SubtypeDeepWinter,
		BestColors: []string{"black", "true red", "unheard-of color"},
	}

	rec := r.Resolve(context.Background(), vibe, testArchetypes())
	require.Len(t, rec.ColorSeasonPalette, 3)
	assert.Equal(t, "#000000", rec.ColorSeasonPalette[0])
	assert.Equal(t, "#808080", rec.ColorSeasonPalette[2]) // unmatched -> mid-gray
}

func TestResolve_KeepsModelColorSeasonPalette(t *testing.T) {
	withPalette := `{
		"primary_archetype": "Techwear",
		"secondary_archetype": "Minimalist",
		"color_palette": ["#000000", "#111111", "#222222"],
		"style_notes": "x",
		"avoid": [],
		"color_season_palette": ["#abcdef"]
	}`
	r := NewResolver(&mockClient{response: withPalette}, false)

	vibe := testVibe()
	vibe.ColorSeason = &types.ColorProfile{BestColors: []string{"black"}}

	rec := r.Resolve(context.Background(), vibe, testArchetypes())
	assert.Equal(t, []string{"#abcdef"}, rec.ColorSeasonPalette)
}

func TestOccasionsFor(t *testing.T) {
	assert.Equal(t, techOccasions, OccasionsFor(types.ProfessionEngineer))
	assert.Equal(t, creativeOccasions, OccasionsFor(types.ProfessionArtist))
	assert.Equal(t, polishedOccasions, OccasionsFor(types.ProfessionFinance))
	assert.Equal(t, defaultOccasions, OccasionsFor(types.ProfessionGeneral))
	assert.Equal(t, defaultOccasions, OccasionsFor(types.ProfessionFitness))
}

func TestProfessionTableCoversAllArchetypes(t *testing.T) {
	for _, p := range types.AllProfessions {
		guide, ok := professionTable[p]
		assert.True(t, ok, "missing guidance for %s", p)
		assert.NotEmpty(t, guide.SignatureItems, "no signature items for %s", p)
	}
}
