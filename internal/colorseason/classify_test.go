package colorseason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/drip-agent/internal/types"
)

func TestClassify_EmptyInputDefaultsToSoftAutumn(t *testing.T) {
	profile := Classify(types.InferredAppearance{})

	assert.Equal(t, types.SubtypeSoftAutumn, profile.Subtype)
	assert.Equal(t, types.SeasonAutumn, profile.Season)
}

func TestClassify_IsPure(t *testing.T) {
	in := types.InferredAppearance{HairColor: "dark brown", EyeColor: "hazel", SkinTone: "fair"}

	first := Classify(in)
	second := Classify(in)
	assert.Equal(t, first, second)
}

func TestClassify_DecisionTable(t *testing.T) {
	tests := []struct {
		name string
		in   types.InferredAppearance
		want types.ColorSubtype
	}{
		{
			name: "warm high contrast dark hair",
			in:   types.InferredAppearance{HairColor: "black", EyeColor: "amber", SkinTone: "fair golden"},
			want: types.SubtypeDeepAutumn,
		},
		{
			name: "warm medium contrast red hair",
			in:   types.InferredAppearance{HairColor: "auburn", EyeColor: "hazel", SkinTone: "warm"},
			want: types.SubtypeWarmAutumn,
		},
		{
			name: "warm low contrast light hair",
			in:   types.InferredAppearance{HairColor: "golden blonde", EyeColor: "amber", SkinTone: "fair warm"},
			want: types.SubtypeLightSpring,
		},
		{
			name: "cool high contrast dark hair",
			in:   types.InferredAppearance{HairColor: "black ash", EyeColor: "blue", SkinTone: "pale cool"},
			want: types.SubtypeDeepWinter,
		},
		{
			name: "cool low contrast light hair",
			in:   types.InferredAppearance{HairColor: "platinum blonde", EyeColor: "blue", SkinTone: "fair rosy"},
			want: types.SubtypeLightSummer,
		},
		{
			name: "cool medium contrast",
			in:   types.InferredAppearance{HairColor: "ash", EyeColor: "blue", SkinTone: "cool"},
			want: types.SubtypeCoolSummer,
		},
		{
			name: "neutral medium contrast",
			in:   types.InferredAppearance{HairColor: "chestnut", EyeColor: "blue", SkinTone: ""},
			want: types.SubtypeSoftAutumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			assert.Equal(t, tt.want, got.Subtype)
		})
	}
}

func TestClassify_UndertoneHintBreaksTies(t *testing.T) {
	// No warm or cool signals at all: the hint decides.
	warm := Classify(types.InferredAppearance{UndertoneGuess: types.UndertoneWarm})
	assert.Equal(t, types.SubtypeWarmSpring, warm.Subtype)

	cool := Classify(types.InferredAppearance{UndertoneGuess: types.UndertoneCool})
	assert.Equal(t, types.SubtypeCoolSummer, cool.Subtype)
}

func TestClassify_HintDoesNotOverrideClearSignals(t *testing.T) {
	// Three warm signals beat a cool hint.
	got := Classify(types.InferredAppearance{
		HairColor:      "golden copper",
		EyeColor:       "amber",
		SkinTone:       "olive",
		UndertoneGuess: types.UndertoneCool,
	})
	assert.Equal(t, types.UndertoneWarm, got.Undertone)
}

func TestPaletteFor_PopulatesBestHex(t *testing.T) {
	profile := PaletteFor(types.SubtypeDeepWinter)

	require.Len(t, profile.BestHex, len(profile.BestColors))
	assert.Equal(t, "#000000", profile.BestHex[0]) // black
}

func TestHexForColor(t *testing.T) {
	assert.Equal(t, "#000000", HexForColor("warm black"))
	assert.Equal(t, "#008080", HexForColor("teal"))
	// Substring containment works in both directions.
	assert.Equal(t, "#e2725b", HexForColor("terracotta red clay"))
	// Unmatched names fall back to mid-gray.
	assert.Equal(t, "#808080", HexForColor("glitter rainbow"))
	assert.Equal(t, "#808080", HexForColor(""))
}

func TestOutfitColors(t *testing.T) {
	profile := PaletteFor(types.SubtypeCoolSummer)
	got := OutfitColors(profile)

	require.Len(t, got.Monochromatic, 3)
	assert.Equal(t, profile.Neutrals[0], got.Monochromatic[0])
	assert.Equal(t, profile.AccentColors[0], got.StatementPiece)
	assert.Len(t, got.EverydayPalette, 4)
}
