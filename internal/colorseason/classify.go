// Package colorseason classifies appearance characteristics into one of
// twelve color-season profiles using keyword signals and a fixed decision
// table. Classification never fails: absent or empty inputs degrade to the
// neutral/medium soft-autumn default.
package colorseason

import (
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// signals holds the boolean keyword signals extracted from appearance text.
type signals struct {
	darkHair  bool
	lightHair bool
	redHair   bool
	warmHair  bool
	coolHair  bool
	warmEyes  bool
	coolEyes  bool
	warmSkin  bool
	coolSkin  bool
	fairSkin  bool
	darkSkin  bool
}

// Keyword sets per field, matched case-insensitively by substring.
var (
	darkHairWords  = []string{"black", "dark", "brown"}
	lightHairWords = []string{"blonde", "light", "gray", "white"}
	redHairWords   = []string{"red", "auburn", "ginger"}
	warmHairWords  = []string{"golden", "copper", "chestnut"}
	coolHairWords  = []string{"ash", "platinum", "silver"}
	warmEyeWords   = []string{"brown", "hazel", "amber", "gold"}
	coolEyeWords   = []string{"blue", "gray", "green"}
	warmSkinWords  = []string{"golden", "olive", "warm", "yellow"}
	coolSkinWords  = []string{"pink", "cool", "rosy", "blue"}
	fairSkinWords  = []string{"fair", "light", "pale"}
	darkSkinWords  = []string{"dark"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func extractSignals(appearance types.InferredAppearance) signals {
	hair := strings.ToLower(appearance.HairColor)
	eyes := strings.ToLower(appearance.EyeColor)
	skin := strings.ToLower(appearance.SkinTone)

	s := signals{
		darkHair:  containsAny(hair, darkHairWords),
		lightHair: containsAny(hair, lightHairWords),
		redHair:   containsAny(hair, redHairWords),
		coolHair:  containsAny(hair, coolHairWords),
		warmEyes:  containsAny(eyes, warmEyeWords),
		coolEyes:  containsAny(eyes, coolEyeWords),
		warmSkin:  containsAny(skin, warmSkinWords),
		coolSkin:  containsAny(skin, coolSkinWords),
		fairSkin:  containsAny(skin, fairSkinWords),
		darkSkin:  containsAny(skin, darkSkinWords),
	}
	// Red hair always reads warm.
	s.warmHair = containsAny(hair, warmHairWords) || s.redHair
	return s
}

// undertone counts warm vs cool signals. Ties and signal-free input resolve
// to the caller-supplied hint when present, else neutral.
func (s signals) undertone(hint types.Undertone) types.Undertone {
	warm := 0
	for _, v := range []bool{s.warmHair, s.warmEyes, s.warmSkin, s.redHair} {
		if v {
			warm++
		}
	}
	cool := 0
	for _, v := range []bool{s.coolHair, s.coolEyes, s.coolSkin} {
		if v {
			cool++
		}
	}

	switch {
	case warm > cool:
		return types.UndertoneWarm
	case cool > warm:
		return types.UndertoneCool
	case hint == types.UndertoneWarm || hint == types.UndertoneCool:
		return hint
	default:
		return types.UndertoneNeutral
	}
}

// contrast derives the hair/skin contrast level.
func (s signals) contrast() types.Contrast {
	switch {
	case s.darkHair && s.fairSkin:
		return types.ContrastHigh
	case s.lightHair && s.darkSkin:
		return types.ContrastHigh
	case s.darkHair && s.darkSkin:
		return types.ContrastLow
	case s.lightHair && s.fairSkin:
		return types.ContrastLow
	default:
		return types.ContrastMedium
	}
}

// subtypeFor is the fixed decision table keyed by undertone, contrast, and
// hair lightness/redness.
func subtypeFor(undertone types.Undertone, contrast types.Contrast, s signals) types.ColorSubtype {
	switch undertone {
	case types.UndertoneWarm:
		switch contrast {
		case types.ContrastHigh:
			if s.darkHair {
				return types.SubtypeDeepAutumn
			}
			return types.SubtypeClearSpring
		case types.ContrastLow:
			if s.lightHair {
				return types.SubtypeLightSpring
			}
			return types.SubtypeSoftAutumn
		default:
			if s.redHair {
				return types.SubtypeWarmAutumn
			}
			return types.SubtypeWarmSpring
		}
	case types.UndertoneCool:
		switch contrast {
		case types.ContrastHigh:
			if s.darkHair {
				return types.SubtypeDeepWinter
			}
			return types.SubtypeClearWinter
		case types.ContrastLow:
			if s.lightHair {
				return types.SubtypeLightSummer
			}
			return types.SubtypeSoftSummer
		default:
			return types.SubtypeCoolSummer
		}
	default:
		switch contrast {
		case types.ContrastHigh:
			if s.darkHair {
				return types.SubtypeDeepWinter
			}
			return types.SubtypeCoolWinter
		case types.ContrastLow:
			return types.SubtypeSoftSummer
		default:
			return types.SubtypeSoftAutumn
		}
	}
}

// Classify maps appearance guesses to one of the twelve color-season
// profiles. Pure: identical inputs always yield the identical record.
func Classify(appearance types.InferredAppearance) types.ColorProfile {
	s := extractSignals(appearance)
	undertone := s.undertone(appearance.UndertoneGuess)
	contrast := s.contrast()
	return PaletteFor(subtypeFor(undertone, contrast, s))
}
