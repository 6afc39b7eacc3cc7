package colorseason

import (
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// palettes is the static record for each of the twelve color-season
// subtypes. Reference data, not computed.
var palettes = map[types.ColorSubtype]types.ColorProfile{
	// SPRING - warm undertones, clear and bright
	types.SubtypeLightSpring: {
		Season:       types.SeasonSpring,
		Subtype:      types.SubtypeLightSpring,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastLow,
		BestColors:   []string{"peach", "coral", "warm pink", "light turquoise", "mint", "camel", "cream"},
		AccentColors: []string{"poppy red", "aqua", "bright coral"},
		AvoidColors:  []string{"black", "dark brown", "burgundy", "charcoal"},
		Metals:       []string{"gold", "rose-gold"},
		Neutrals:     []string{"ivory", "warm beige", "light camel", "soft white"},
		Description:  "Fresh, delicate, and youthful. Think spring garden colors.",
	},
	types.SubtypeWarmSpring: {
		Season:       types.SeasonSpring,
		Subtype:      types.SubtypeWarmSpring,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastMedium,
		BestColors:   []string{"tangerine", "warm coral", "golden yellow", "leaf green", "warm turquoise"},
		AccentColors: []string{"tomato red", "orange", "bright teal"},
		AvoidColors:  []string{"cool pink", "burgundy", "black", "silver-gray"},
		Metals:       []string{"gold", "copper"},
		Neutrals:     []string{"camel", "warm brown", "buff", "golden beige"},
		Description:  "Energetic and sunny. Golden undertones throughout.",
	},
	types.SubtypeClearSpring: {
		Season:       types.SeasonSpring,
		Subtype:      types.SubtypeClearSpring,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastHigh,
		BestColors:   []string{"bright coral", "warm red", "emerald", "turquoise", "cobalt blue", "hot pink"},
		AccentColors: []string{"electric blue", "lime green", "bright orange"},
		AvoidColors:  []string{"muted colors", "dusty tones", "olive", "mauve"},
		Metals:       []string{"gold", "rose-gold"},
		Neutrals:     []string{"navy", "warm black", "bright white", "camel"},
		Description:  "Bold and vivid. High contrast between hair and skin.",
	},

	// SUMMER - cool undertones, soft and muted
	types.SubtypeLightSummer: {
		Season:       types.SeasonSummer,
		Subtype:      types.SubtypeLightSummer,
		Undertone:    types.UndertoneCool,
		Contrast:     types.ContrastLow,
		BestColors:   []string{"powder blue", "soft pink", "lavender", "soft aqua", "rose", "periwinkle"},
		AccentColors: []string{"soft raspberry", "light plum", "dusty blue"},
		AvoidColors:  []string{"orange", "rust", "mustard", "warm brown"},
		Metals:       []string{"silver", "rose-gold"},
		Neutrals:     []string{"soft white", "dove gray", "taupe", "soft navy"},
		Description:  "Ethereal and romantic. Soft, dusty pastels.",
	},
	types.SubtypeCoolSummer: {
		Season:       types.SeasonSummer,
		Subtype:      types.SubtypeCoolSummer,
		Undertone:    types.UndertoneCool,
		Contrast:     types.ContrastMedium,
		BestColors:   []string{"raspberry", "dusty rose", "slate blue", "soft teal", "lavender", "burgundy"},
		AccentColors: []string{"watermelon", "plum", "deep periwinkle"},
		AvoidColors:  []string{"orange", "rust", "warm yellow", "golden brown"},
		Metals:       []string{"silver", "rose-gold"},
		Neutrals:     []string{"charcoal", "gray", "navy", "soft black"},
		Description:  "Elegant and sophisticated. Cool, muted palette.",
	},
	types.SubtypeSoftSummer: {
		Season:       types.SeasonSummer,
		Subtype:      types.SubtypeSoftSummer,
		Undertone:    types.UndertoneNeutral,
		Contrast:     types.ContrastLow,
		BestColors:   []string{"dusty blue", "mauve", "sage", "soft teal", "cocoa", "stone"},
		AccentColors: []string{"muted plum", "dusty pink", "soft burgundy"},
		AvoidColors:  []string{"bright colors", "neon", "pure white", "jet black"},
		Metals:       []string{"silver", "rose-gold"},
		Neutrals:     []string{"greige", "mushroom", "soft charcoal", "stone"},
		Description:  "Understated elegance. Soft, muted, and harmonious.",
	},

	// AUTUMN - warm undertones, muted and rich
	types.SubtypeSoftAutumn: {
		Season:       types.SeasonAutumn,
		Subtype:      types.SubtypeSoftAutumn,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastLow,
		BestColors:   []string{"soft teal", "sage", "dusty coral", "warm gray", "muted gold", "soft olive"},
		AccentColors: []string{"terracotta", "burnt sienna", "soft rust"},
		AvoidColors:  []string{"bright colors", "cool pink", "icy colors", "black"},
		Metals:       []string{"gold", "copper", "rose-gold"},
		Neutrals:     []string{"oyster", "stone", "warm gray", "soft brown"},
		Description:  "Earthy and subtle. Soft, muted warmth.",
	},
	types.SubtypeWarmAutumn: {
		Season:       types.SeasonAutumn,
		Subtype:      types.SubtypeWarmAutumn,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastMedium,
		BestColors:   []string{"terracotta", "rust", "olive", "mustard", "burnt orange", "teal"},
		AccentColors: []string{"tomato red", "saffron", "deep teal"},
		AvoidColors:  []string{"cool pink", "icy blue", "silver-gray", "black"},
		Metals:       []string{"gold", "copper"},
		Neutrals:     []string{"camel", "chocolate brown", "cream", "khaki"},
		Description:  "Rich harvest colors. Golden, earthy warmth.",
	},
	types.SubtypeDeepAutumn: {
		Season:       types.SeasonAutumn,
		Subtype:      types.SubtypeDeepAutumn,
		Undertone:    types.UndertoneWarm,
		Contrast:     types.ContrastHigh,
		BestColors:   []string{"olive", "forest green", "burnt orange", "tomato red", "teal", "rust"},
		AccentColors: []string{"emerald", "pumpkin", "deep coral"},
		AvoidColors:  []string{"pastels", "cool pink", "icy colors", "lavender"},
		Metals:       []string{"gold", "copper"},
		Neutrals:     []string{"dark brown", "charcoal brown", "cream", "khaki"},
		Description:  "Rich and intense. Deep, saturated earth tones.",
	},

	// WINTER - cool undertones, high contrast
	types.SubtypeDeepWinter: {
		Season:       types.SeasonWinter,
		Subtype:      types.SubtypeDeepWinter,
		Undertone:    types.UndertoneCool,
		Contrast:     types.ContrastHigh,
		BestColors:   []string{"black", "pure white", "burgundy", "emerald", "sapphire blue", "deep purple"},
		AccentColors: []string{"ruby red", "royal blue", "bright magenta"},
		AvoidColors:  []string{"muted colors", "earth tones", "orange", "golden brown"},
		Metals:       []string{"silver", "rose-gold"},
		Neutrals:     []string{"black", "pure white", "charcoal", "navy"},
		Description:  "Dramatic and bold. Rich, deep, and high contrast.",
	},
	types.SubtypeCoolWinter: {
		Season:       types.SeasonWinter,
		Subtype:      types.SubtypeCoolWinter,
		Undertone:    types.UndertoneCool,
		Contrast:     types.ContrastHigh,
		BestColors:   []string{"true red", "fuchsia", "royal blue", "emerald", "icy pink", "purple"},
		AccentColors: []string{"hot pink", "electric blue", "bright purple"},
		AvoidColors:  []string{"orange", "warm brown", "mustard", "peach"},
		Metals:       []string{"silver"},
		Neutrals:     []string{"black", "white", "gray", "navy"},
		Description:  "Cool and sophisticated. Pure, saturated colors.",
	},
	types.SubtypeClearWinter: {
		Season:       types.SeasonWinter,
		Subtype:      types.SubtypeClearWinter,
		Undertone:    types.UndertoneCool,
		Contrast:     types.ContrastHigh,
		BestColors:   []string{"true red", "emerald", "cobalt blue", "hot pink", "icy violet", "black"},
		AccentColors: []string{"fuchsia", "bright turquoise", "shocking pink"},
		AvoidColors:  []string{"muted colors", "dusty tones", "warm browns", "orange"},
		Metals:       []string{"silver", "rose-gold"},
		Neutrals:     []string{"jet black", "pure white", "light gray", "navy"},
		Description:  "Vivid and striking. Clear, bright, high-contrast.",
	},
}

// colorHexEntry pairs a color name with its hex value. Matching is substring
// containment in either direction, first entry wins.
type colorHexEntry struct {
	name string
	hex  string
}

// colorHexTable maps common palette color names to representative hex values.
// Insertion order is the tie-break for ambiguous short names.
var colorHexTable = []colorHexEntry{
	{"black", "#000000"},
	{"pure white", "#ffffff"},
	{"white", "#fafafa"},
	{"charcoal", "#36454f"},
	{"navy", "#1e3a5f"},
	{"gray", "#808080"},
	{"burgundy", "#800020"},
	{"emerald", "#2ecc71"},
	{"sapphire blue", "#0f52ba"},
	{"royal blue", "#4169e1"},
	{"cobalt blue", "#0047ab"},
	{"powder blue", "#b0e0e6"},
	{"dusty blue", "#8da9c4"},
	{"slate blue", "#6a5acd"},
	{"true red", "#cc0000"},
	{"tomato red", "#ff6347"},
	{"warm red", "#d43d1a"},
	{"poppy red", "#e35335"},
	{"fuchsia", "#ff00ff"},
	{"hot pink", "#ff69b4"},
	{"icy pink", "#f7cfe1"},
	{"soft pink", "#f4c2c2"},
	{"warm pink", "#f88379"},
	{"dusty rose", "#c08081"},
	{"raspberry", "#e30b5d"},
	{"rose", "#e8adaa"},
	{"deep purple", "#51258f"},
	{"icy violet", "#c8a2c8"},
	{"purple", "#800080"},
	{"lavender", "#e6e6fa"},
	{"mauve", "#e0b0ff"},
	{"plum", "#8e4585"},
	{"periwinkle", "#ccccff"},
	{"turquoise", "#40e0d0"},
	{"soft aqua", "#a8dcd9"},
	{"aqua", "#00ffff"},
	{"soft teal", "#5e8d87"},
	{"teal", "#008080"},
	{"mint", "#98ff98"},
	{"sage", "#9caf88"},
	{"leaf green", "#71aa34"},
	{"forest green", "#228b22"},
	{"olive", "#708238"},
	{"golden yellow", "#ffc30b"},
	{"muted gold", "#c5a358"},
	{"mustard", "#e1ad01"},
	{"tangerine", "#f28500"},
	{"burnt orange", "#cc5500"},
	{"orange", "#ff8c00"},
	{"terracotta", "#e2725b"},
	{"rust", "#b7410e"},
	{"bright coral", "#ff5a4c"},
	{"warm coral", "#f88158"},
	{"dusty coral", "#d29380"},
	{"coral", "#ff7f50"},
	{"peach", "#ffe5b4"},
	{"camel", "#c19a6b"},
	{"cream", "#fffdd0"},
	{"cocoa", "#875f42"},
	{"stone", "#aba393"},
	{"warm gray", "#9c9488"},
}

// defaultHex is used for palette names with no table match.
const defaultHex = "#808080"

// HexForColor resolves a color name to a hex value. A name matches a table
// entry when either string contains the other, case-insensitive; the first
// matching entry wins. Unmatched names return mid-gray.
func HexForColor(name string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return defaultHex
	}
	for _, entry := range colorHexTable {
		if strings.Contains(needle, entry.name) || strings.Contains(entry.name, needle) {
			return entry.hex
		}
	}
	return defaultHex
}

// PaletteFor returns the static record for a subtype with BestHex populated.
// Unknown subtypes fall back to soft-autumn, the neutral default.
func PaletteFor(subtype types.ColorSubtype) types.ColorProfile {
	profile, ok := palettes[subtype]
	if !ok {
		profile = palettes[types.SubtypeSoftAutumn]
	}
	hexes := make([]string, len(profile.BestColors))
	for i, name := range profile.BestColors {
		hexes[i] = HexForColor(name)
	}
	profile.BestHex = hexes
	return profile
}

// OutfitColors groups a profile's palette into ready-to-wear combinations.
func OutfitColors(profile types.ColorProfile) types.OutfitColorSuggestions {
	suggestions := types.OutfitColorSuggestions{
		StatementPiece: first(profile.AccentColors),
	}
	if len(profile.Neutrals) >= 2 && len(profile.BestColors) >= 1 {
		suggestions.Monochromatic = []string{profile.Neutrals[0], profile.Neutrals[1], profile.BestColors[0]}
	}
	if len(profile.BestColors) >= 3 && len(profile.AccentColors) >= 1 {
		suggestions.Complementary = []string{profile.BestColors[0], profile.BestColors[2], profile.AccentColors[0]}
	}
	if len(profile.Neutrals) >= 2 && len(profile.BestColors) >= 2 {
		suggestions.EverydayPalette = append(append([]string{}, profile.Neutrals[:2]...), profile.BestColors[:2]...)
	}
	return suggestions
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
