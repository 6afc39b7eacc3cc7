package vibe

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/prompts"
	"github.com/jonathan/drip-agent/internal/types"
)

// Defaults backfilled into demographic guesses.
const (
	defaultAgeRange = "25-34"
	defaultEra      = "modern"
)

// DemographicsAgent turns raw profile text into demographic and appearance
// guesses via one inference call. Guesses are inherently speculative, so this
// agent never fails: any API or parse error yields the neutral default, and a
// successful result is coerced field by field into known enum values.
type DemographicsAgent struct {
	client llm.Client
}

// NewDemographicsAgent creates a demographics agent using the given client.
func NewDemographicsAgent(client llm.Client) *DemographicsAgent {
	return &DemographicsAgent{client: client}
}

// rawDemographics matches the model's loosely-typed response before
// coercion.
type rawDemographics struct {
	Gender           string  `json:"gender"`
	GenderConfidence float64 `json:"gender_confidence"`
	AgeRange         string  `json:"age_range"`
	Profession       string  `json:"profession"`
	Location         string  `json:"location"`
	Appearance       *struct {
		HairColor      string `json:"hair_color"`
		EyeColor       string `json:"eye_color"`
		SkinTone       string `json:"skin_tone"`
		UndertoneGuess string `json:"undertone_guess"`
		EraPreference  string `json:"era_preference"`
	} `json:"appearance"`
}

// Analyze runs the demographics inference call for a profile. It always
// returns a usable analysis.
func (a *DemographicsAgent) Analyze(ctx context.Context, profile *types.Profile) *types.DemographicsAnalysis {
	system := prompts.Format(prompts.MustGet("vibe.json", "demographics-system"), map[string]string{
		"Professions": professionList(),
	})
	user := prompts.Format(prompts.MustGet("vibe.json", "demographics-user"), map[string]string{
		"Handle": profile.Handle,
		"Bio":    profile.Bio,
		"Name":   profile.Name,
		"Posts":  formatPosts(profile.Posts),
	})

	response, err := a.client.Complete(ctx, system, user, llm.TierLite, llm.Options{JSONMode: true})
	if err != nil {
		return defaultDemographics()
	}

	var raw rawDemographics
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return defaultDemographics()
	}

	return coerceDemographics(&raw)
}

// coerceDemographics normalizes a raw model response: unknown enum strings
// fall back to their defaults, confidence is clamped to [0,1], and absent
// fields are backfilled.
func coerceDemographics(raw *rawDemographics) *types.DemographicsAnalysis {
	analysis := &types.DemographicsAnalysis{
		Gender:           types.ParseGender(raw.Gender),
		GenderConfidence: clampConfidence(raw.GenderConfidence),
		AgeRange:         strings.TrimSpace(raw.AgeRange),
		Profession:       types.ParseProfession(raw.Profession),
		Location:         strings.TrimSpace(raw.Location),
	}
	if analysis.AgeRange == "" {
		analysis.AgeRange = defaultAgeRange
	}

	appearance := &types.InferredAppearance{
		UndertoneGuess: types.UndertoneNeutral,
		EraPreference:  defaultEra,
	}
	if raw.Appearance != nil {
		appearance.HairColor = strings.TrimSpace(raw.Appearance.HairColor)
		appearance.EyeColor = strings.TrimSpace(raw.Appearance.EyeColor)
		appearance.SkinTone = strings.TrimSpace(raw.Appearance.SkinTone)
		appearance.UndertoneGuess = types.ParseUndertone(raw.Appearance.UndertoneGuess)
		if era := strings.TrimSpace(raw.Appearance.EraPreference); era != "" {
			appearance.EraPreference = era
		}
	}
	analysis.Appearance = appearance

	return analysis
}

func defaultDemographics() *types.DemographicsAnalysis {
	return &types.DemographicsAnalysis{
		Gender:           types.GenderUnknown,
		GenderConfidence: 0,
		AgeRange:         defaultAgeRange,
		Profession:       types.ProfessionGeneral,
		Appearance: &types.InferredAppearance{
			UndertoneGuess: types.UndertoneNeutral,
			EraPreference:  defaultEra,
		},
	}
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func professionList() string {
	names := make([]string, len(types.AllProfessions))
	for i, p := range types.AllProfessions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
