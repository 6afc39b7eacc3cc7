package types

import "strings"

// Gender is the detected gender used for product filtering.
type Gender string

// Gender values recognized by the matching pipeline.
const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
	GenderUnknown   Gender = "unknown"
)

// ParseGender coerces an arbitrary model-returned string to a Gender value.
// Unrecognized input resolves to GenderUnknown.
func ParseGender(s string) Gender {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	case GenderNonBinary:
		return GenderNonBinary
	default:
		return GenderUnknown
	}
}

// Known reports whether g carries usable gender information.
func (g Gender) Known() bool {
	return g == GenderMale || g == GenderFemale || g == GenderNonBinary
}

// ProfessionArchetype is one of ten fixed occupational/interest categories
// used to bias style guidance.
type ProfessionArchetype string

// Profession archetypes. ProfessionGeneral is the fallback for anything the
// model returns that we do not recognize.
const (
	ProfessionGeneral        ProfessionArchetype = "general"
	ProfessionTechFounder    ProfessionArchetype = "tech-founder"
	ProfessionEngineer       ProfessionArchetype = "engineer"
	ProfessionDesigner       ProfessionArchetype = "designer"
	ProfessionArtist         ProfessionArchetype = "artist"
	ProfessionFinance        ProfessionArchetype = "finance"
	ProfessionAcademic       ProfessionArchetype = "academic"
	ProfessionFitness        ProfessionArchetype = "fitness"
	ProfessionContentCreator ProfessionArchetype = "content-creator"
	ProfessionEntrepreneur   ProfessionArchetype = "entrepreneur"
)

// AllProfessions lists every profession archetype in a stable order.
var AllProfessions = []ProfessionArchetype{
	ProfessionGeneral,
	ProfessionTechFounder,
	ProfessionEngineer,
	ProfessionDesigner,
	ProfessionArtist,
	ProfessionFinance,
	ProfessionAcademic,
	ProfessionFitness,
	ProfessionContentCreator,
	ProfessionEntrepreneur,
}

// ParseProfession coerces an arbitrary string to a ProfessionArchetype,
// falling back to ProfessionGeneral.
func ParseProfession(s string) ProfessionArchetype {
	normalized := ProfessionArchetype(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, p := range AllProfessions {
		if normalized == p {
			return p
		}
	}
	return ProfessionGeneral
}

// ClothingWeight classifies how substantial a garment is.
type ClothingWeight string

// Clothing weights, from lightest to heaviest. Layered sits between light
// and medium and never counts as an extreme.
const (
	WeightLight   ClothingWeight = "light"
	WeightLayered ClothingWeight = "layered"
	WeightMedium  ClothingWeight = "medium"
	WeightHeavy   ClothingWeight = "heavy"
)

// ParseClothingWeight coerces a string to a ClothingWeight. Unrecognized
// input returns the empty value, meaning "no weight information".
func ParseClothingWeight(s string) ClothingWeight {
	switch ClothingWeight(strings.ToLower(strings.TrimSpace(s))) {
	case WeightLight:
		return WeightLight
	case WeightLayered:
		return WeightLayered
	case WeightMedium:
		return WeightMedium
	case WeightHeavy:
		return WeightHeavy
	default:
		return ""
	}
}

// BudgetTier describes the price range a recommendation targets.
type BudgetTier string

// Budget tiers returned by the style resolver.
const (
	BudgetAccessible BudgetTier = "accessible"
	BudgetMidRange   BudgetTier = "mid-range"
	BudgetLuxury     BudgetTier = "luxury"
	BudgetMixed      BudgetTier = "mixed"
)

// ParseBudgetTier coerces a string to a BudgetTier, falling back to
// BudgetMixed.
func ParseBudgetTier(s string) BudgetTier {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetAccessible:
		return BudgetAccessible
	case BudgetMidRange:
		return BudgetMidRange
	case BudgetLuxury:
		return BudgetLuxury
	default:
		return BudgetMixed
	}
}
