package style

import (
	"fmt"
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// professionGuide is the fixed styling context for one profession archetype.
type professionGuide struct {
	Description    string
	ExampleBrands  []string
	SignatureItems []string
	Vibe           string
}

var professionTable = map[types.ProfessionArchetype]professionGuide{
	types.ProfessionGeneral: {
		Description:    "No strong occupational signal; style guidance stays broadly wearable.",
		ExampleBrands:  []string{"Uniqlo", "COS", "Everlane"},
		SignatureItems: []string{"well-fitted tee", "dark denim", "clean sneakers"},
		Vibe:           "versatile and unfussy",
	},
	types.ProfessionTechFounder: {
		Description:    "Runs a startup; dresses for investor meetings and 2am deploys in the same outfit.",
		ExampleBrands:  []string{"Arc'teryx Veilance", "Lululemon", "Common Projects"},
		SignatureItems: []string{"technical blazer", "merino crew", "minimal white sneakers"},
		Vibe:           "polished but ready to sprint",
	},
	types.ProfessionEngineer: {
		Description:    "Builds software; comfort-first with a quietly intentional edge.",
		ExampleBrands:  []string{"Uniqlo U", "Carhartt WIP", "New Balance"},
		SignatureItems: []string{"quality hoodie", "straight-leg trousers", "990s"},
		Vibe:           "understated utilitarian",
	},
	types.ProfessionDesigner: {
		Description:    "Works in visual craft; clothing is an extension of the portfolio.",
		ExampleBrands:  []string{"COS", "Our Legacy", "Maison Margiela"},
		SignatureItems: []string{"boxy overshirt", "wide trousers", "statement glasses"},
		Vibe:           "considered and architectural",
	},
	types.ProfessionArtist: {
		Description:    "Makes things with their hands; wears pieces with texture and history.",
		ExampleBrands:  []string{"Kapital", "Story Mfg", "vintage"},
		SignatureItems: []string{"paint-friendly workwear jacket", "loose denim", "worn-in boots"},
		Vibe:           "expressive and lived-in",
	},
	types.ProfessionFinance: {
		Description:    "Client-facing and tailored; quality reads louder than logos.",
		ExampleBrands:  []string{"Zegna", "Brunello Cucinelli", "Loro Piana"},
		SignatureItems: []string{"unstructured navy blazer", "cashmere knit", "leather loafers"},
		Vibe:           "quiet authority",
	},
	types.ProfessionAcademic: {
		Description:    "Lectures and reads; layered, bookish, slightly rumpled on purpose.",
		ExampleBrands:  []string{"Margaret Howell", "Drake's", "J.Crew"},
		SignatureItems: []string{"corduroy blazer", "oxford shirt", "suede desert boots"},
		Vibe:           "thoughtful and textured",
	},
	types.ProfessionFitness: {
		Description:    "Trains daily; performance pieces that transition to the street.",
		ExampleBrands:  []string{"Lululemon", "Nike", "Satisfy"},
		SignatureItems: []string{"technical zip layer", "tapered joggers", "running shoes"},
		Vibe:           "athletic and streamlined",
	},
	types.ProfessionContentCreator: {
		Description:    "On camera constantly; outfits need to photograph well and repeat rarely.",
		ExampleBrands:  []string{"Acne Studios", "Stüssy", "Aimé Leon Dore"},
		SignatureItems: []string{"statement outerwear", "versatile basics", "camera-ready accessories"},
		Vibe:           "photogenic with range",
	},
	types.ProfessionEntrepreneur: {
		Description:    "Wears many hats in one day; adaptable smart-casual is the uniform.",
		ExampleBrands:  []string{"Everlane", "Theory", "Koio"},
		SignatureItems: []string{"versatile blazer", "dark chinos", "minimal leather sneakers"},
		Vibe:           "adaptable and sharp",
	},
}

// occasionTriples are the four fixed occasion sets for outfit grouping.
var (
	defaultOccasions  = [3]string{"everyday", "weekend", "special occasion"}
	techOccasions     = [3]string{"demo day", "deep work", "launch party"}
	creativeOccasions = [3]string{"studio session", "gallery opening", "weekend wander"}
	polishedOccasions = [3]string{"office day", "client dinner", "conference"}
)

// OccasionsFor returns the occasion-name triple for a profession.
func OccasionsFor(profession types.ProfessionArchetype) [3]string {
	switch profession {
	case types.ProfessionTechFounder, types.ProfessionEngineer, types.ProfessionEntrepreneur:
		return techOccasions
	case types.ProfessionDesigner, types.ProfessionArtist, types.ProfessionContentCreator:
		return creativeOccasions
	case types.ProfessionFinance, types.ProfessionAcademic:
		return polishedOccasions
	default:
		return defaultOccasions
	}
}

// SignatureItemsFor returns the default signature pieces for a profession.
func SignatureItemsFor(profession types.ProfessionArchetype) []string {
	guide, ok := professionTable[profession]
	if !ok {
		guide = professionTable[types.ProfessionGeneral]
	}
	return guide.SignatureItems
}

// guidanceFor renders the profession's guidance block for prompt insertion.
func guidanceFor(profession types.ProfessionArchetype) string {
	guide, ok := professionTable[profession]
	if !ok {
		guide = professionTable[types.ProfessionGeneral]
	}
	return fmt.Sprintf("Profession: %s\n%s\nVibe: %s\nBrands they would recognize: %s\nSignature items: %s",
		profession, guide.Description, guide.Vibe,
		strings.Join(guide.ExampleBrands, ", "),
		strings.Join(guide.SignatureItems, ", "))
}
