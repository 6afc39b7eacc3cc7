package types

import "strings"

// ColorSeason is one of the four color-theory seasons.
type ColorSeason string

// Color seasons.
const (
	SeasonSpring ColorSeason = "spring"
	SeasonSummer ColorSeason = "summer"
	SeasonAutumn ColorSeason = "autumn"
	SeasonWinter ColorSeason = "winter"
)

// ColorSubtype is one of the twelve season subtypes.
type ColorSubtype string

// Color subtypes, three per season.
const (
	SubtypeLightSpring ColorSubtype = "light-spring"
	SubtypeWarmSpring  ColorSubtype = "warm-spring"
	SubtypeClearSpring ColorSubtype = "clear-spring"
	SubtypeLightSummer ColorSubtype = "light-summer"
	SubtypeCoolSummer  ColorSubtype = "cool-summer"
	SubtypeSoftSummer  ColorSubtype = "soft-summer"
	SubtypeSoftAutumn  ColorSubtype = "soft-autumn"
	SubtypeWarmAutumn  ColorSubtype = "warm-autumn"
	SubtypeDeepAutumn  ColorSubtype = "deep-autumn"
	SubtypeDeepWinter  ColorSubtype = "deep-winter"
	SubtypeCoolWinter  ColorSubtype = "cool-winter"
	SubtypeClearWinter ColorSubtype = "clear-winter"
)

// Undertone is the skin undertone classification.
type Undertone string

// Undertones.
const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// ParseUndertone coerces a string to an Undertone, falling back to
// UndertoneNeutral.
func ParseUndertone(s string) Undertone {
	switch Undertone(strings.ToLower(strings.TrimSpace(s))) {
	case UndertoneWarm:
		return UndertoneWarm
	case UndertoneCool:
		return UndertoneCool
	default:
		return UndertoneNeutral
	}
}

// Contrast is the hair/skin contrast level.
type Contrast string

// Contrast levels.
const (
	ContrastHigh   Contrast = "high"
	ContrastMedium Contrast = "medium"
	ContrastLow    Contrast = "low"
)

// ColorProfile is one of twelve static color-season records. Derived purely
// from InferredAppearance; immutable.
type ColorProfile struct {
	Season       ColorSeason  `json:"season"`
	Subtype      ColorSubtype `json:"subtype"`
	Undertone    Undertone    `json:"undertone"`
	Contrast     Contrast     `json:"contrast"`
	BestColors   []string     `json:"best_colors"`
	AccentColors []string     `json:"accent_colors"`
	AvoidColors  []string     `json:"avoid_colors"`
	BestHex      []string     `json:"best_hex,omitempty"`
	Metals       []string     `json:"metals"`
	Neutrals     []string     `json:"neutrals"`
	Description  string       `json:"description"`
}

// OutfitColorSuggestions groups a ColorProfile's palette into ready-to-wear
// combinations.
type OutfitColorSuggestions struct {
	Monochromatic   []string `json:"monochromatic"`
	Complementary   []string `json:"complementary"`
	StatementPiece  string   `json:"statement_piece"`
	EverydayPalette []string `json:"everyday_palette"`
}

// InferredAppearance holds the demographics agent's guesses about physical
// characteristics, used to derive a ColorProfile.
type InferredAppearance struct {
	HairColor      string    `json:"hair_color,omitempty"`
	EyeColor       string    `json:"eye_color,omitempty"`
	SkinTone       string    `json:"skin_tone,omitempty"`
	UndertoneGuess Undertone `json:"undertone_guess,omitempty"`
	EraPreference  string    `json:"era_preference,omitempty"`
}
