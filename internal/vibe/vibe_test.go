package vibe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/types"
	"github.com/jonathan/drip-agent/internal/weather"
)

// mockClient returns canned responses keyed by a substring of the system
// prompt, so one client can serve both agents in aggregator tests.
type mockClient struct {
	personalityResponse string
	personalityErr      error
	demographicsResp    string
	demographicsErr     error
	calls               int
}

func (m *mockClient) Complete(_ context.Context, systemPrompt, _ string, _ llm.ModelTier, _ llm.Options) (string, error) {
	m.calls++
	if strings.Contains(systemPrompt, "demographic") {
		return m.demographicsResp, m.demographicsErr
	}
	return m.personalityResponse, m.personalityErr
}

func (m *mockClient) GetModel(llm.ModelTier) string { return "mock" }
func (m *mockClient) Close() error                  { return nil }

const validPersonality = `{
	"personality_traits": ["driven", "ironic"],
	"interests": ["coffee", "keyboards"],
	"communication_style": "dry one-liners",
	"aesthetic_keywords": ["minimal", "dark", "technical"],
	"energy": "focused chaos",
	"vibe_summary": "A builder who dresses like their terminal theme."
}`

const validDemographics = `{
	"gender": "Male",
	"gender_confidence": 1.7,
	"age_range": "",
	"profession": "Tech_Founder",
	"location": "Seattle",
	"appearance": {
		"hair_color": "dark brown",
		"eye_color": "brown",
		"skin_tone": "medium",
		"undertone_guess": "WARM",
		"era_preference": ""
	}
}`

func testProfile() *types.Profile {
	return &types.Profile{
		Handle:    "demo_dev",
		Bio:       "Staff Engineer.",
		Followers: 100,
		Following: 50,
		Posts:     []string{"post one", "post two"},
	}
}

func TestPersonalityAgent_Success(t *testing.T) {
	client := &mockClient{personalityResponse: validPersonality}
	agent := NewPersonalityAgent(client)

	analysis, err := agent.Analyze(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, []string{"driven", "ironic"}, analysis.PersonalityTraits)
	assert.Equal(t, "focused chaos", analysis.Energy)
}

func TestPersonalityAgent_APIFailureIsFatal(t *testing.T) {
	client := &mockClient{personalityErr: errors.New("boom")}
	agent := NewPersonalityAgent(client)

	_, err := agent.Analyze(context.Background(), testProfile())
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestPersonalityAgent_SchemaViolationIsFatal(t *testing.T) {
	// Missing aesthetic_keywords.
	client := &mockClient{personalityResponse: `{
		"personality_traits": ["x"],
		"interests": [],
		"communication_style": "y",
		"energy": "z",
		"vibe_summary": "w"
	}`}
	agent := NewPersonalityAgent(client)

	_, err := agent.Analyze(context.Background(), testProfile())
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDemographicsAgent_CoercesAndBackfills(t *testing.T) {
	client := &mockClient{demographicsResp: validDemographics}
	agent := NewDemographicsAgent(client)

	analysis := agent.Analyze(context.Background(), testProfile())
	require.NotNil(t, analysis)

	assert.Equal(t, types.GenderMale, analysis.Gender)
	assert.Equal(t, 1.0, analysis.GenderConfidence) // clamped
	assert.Equal(t, defaultAgeRange, analysis.AgeRange)
	assert.Equal(t, types.ProfessionTechFounder, analysis.Profession)
	require.NotNil(t, analysis.Appearance)
	assert.Equal(t, types.UndertoneWarm, analysis.Appearance.UndertoneGuess)
	assert.Equal(t, defaultEra, analysis.Appearance.EraPreference)
}

func TestDemographicsAgent_NeverFails(t *testing.T) {
	tests := []struct {
		name   string
		client *mockClient
	}{
		{"api error", &mockClient{demographicsErr: errors.New("boom")}},
		{"garbage response", &mockClient{demographicsResp: "not json at all"}},
		{"empty object", &mockClient{demographicsResp: "{}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := NewDemographicsAgent(tt.client).Analyze(context.Background(), testProfile())
			require.NotNil(t, analysis)
			assert.Equal(t, types.GenderUnknown, analysis.Gender)
			assert.Equal(t, defaultAgeRange, analysis.AgeRange)
			assert.Equal(t, types.ProfessionGeneral, analysis.Profession)
			require.NotNil(t, analysis.Appearance)
			assert.Equal(t, types.UndertoneNeutral, analysis.Appearance.UndertoneGuess)
		})
	}
}

func TestAggregator_MergesAllSources(t *testing.T) {
	client := &mockClient{
		personalityResponse: validPersonality,
		demographicsResp:    validDemographics,
	}
	agg := NewAggregator(client, weather.NewService(""))

	profile := testProfile()
	profile.Location = "Seattle, WA"

	vp, err := agg.Aggregate(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, "focused chaos", vp.Energy)
	assert.Equal(t, types.GenderMale, vp.Gender)
	assert.Equal(t, types.ProfessionTechFounder, vp.Profession)
	assert.Equal(t, "Seattle, WA", vp.Location)

	require.NotNil(t, vp.Weather)
	assert.Equal(t, "Rainy", vp.Weather.Condition)
	require.NotNil(t, vp.Seasonal)
	assert.Contains(t, vp.Seasonal.FabricSuggestions, "water-resistant nylon")

	require.NotNil(t, vp.ColorSeason)
	assert.NotEmpty(t, vp.ColorSeason.BestColors)
	require.NotNil(t, vp.Appearance)
}

func TestAggregator_PersonalityFailureDiscardsEverything(t *testing.T) {
	client := &mockClient{
		personalityErr:   errors.New("model unavailable"),
		demographicsResp: validDemographics,
	}
	agg := NewAggregator(client, weather.NewService(""))

	vp, err := agg.Aggregate(context.Background(), testProfile())
	require.Error(t, err)
	assert.Nil(t, vp)
}

func TestAggregator_InferredLocationFallback(t *testing.T) {
	client := &mockClient{
		personalityResponse: validPersonality,
		demographicsResp:    validDemographics,
	}
	agg := NewAggregator(client, weather.NewService(""))

	// Profile has no location; the inferred "Seattle" supplies weather.
	vp, err := agg.Aggregate(context.Background(), testProfile())
	require.NoError(t, err)
	require.NotNil(t, vp.Weather)
	assert.Equal(t, "Rainy", vp.Weather.Condition)
	assert.Equal(t, "Seattle", vp.Location)
}
