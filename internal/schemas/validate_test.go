package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PersonalityValid(t *testing.T) {
	doc := []byte(`{
		"personality_traits": ["curious", "driven"],
		"interests": ["startups"],
		"communication_style": "direct and playful",
		"aesthetic_keywords": ["minimal", "technical"],
		"energy": "late-night builder",
		"vibe_summary": "Ships fast, dresses faster."
	}`)

	assert.NoError(t, Validate(Personality, doc))
}

func TestValidate_PersonalityMissingFields(t *testing.T) {
	doc := []byte(`{"personality_traits": ["curious"]}`)

	err := Validate(Personality, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, Personality, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_StyleValid(t *testing.T) {
	doc := []byte(`{
		"primary_archetype": "Minimalist",
		"secondary_archetype": "Streetwear",
		"color_palette": ["#000000", "#ffffff", "#808080", "#1a1a1a"],
		"style_notes": "Clean pieces, strong silhouettes.",
		"avoid": ["loud patterns"],
		"budget_tier": "mixed"
	}`)

	assert.NoError(t, Validate(Style, doc))
}

func TestValidate_StylePaletteTooSmall(t *testing.T) {
	doc := []byte(`{
		"primary_archetype": "Minimalist",
		"secondary_archetype": "Streetwear",
		"color_palette": ["#000000"],
		"style_notes": "notes",
		"avoid": []
	}`)

	assert.Error(t, Validate(Style, doc))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("does-not-exist", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidate_MalformedJSON(t *testing.T) {
	assert.Error(t, Validate(Personality, []byte(`{broken`)))
}
