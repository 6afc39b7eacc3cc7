package types

// PersonalityAnalysis is the structured personality/aesthetic result of one
// inference call. A garbled result here aborts the job, so fields are decoded
// strictly with no defaults.
type PersonalityAnalysis struct {
	PersonalityTraits  []string `json:"personality_traits"`
	Interests          []string `json:"interests"`
	CommunicationStyle string   `json:"communication_style"`
	AestheticKeywords  []string `json:"aesthetic_keywords"`
	Energy             string   `json:"energy"`
	VibeSummary        string   `json:"vibe_summary"`
}

// DemographicsAnalysis is the structured demographic/appearance result of one
// inference call. Demographic guesses are speculative, so this type always
// carries usable values: unknown enums are coerced and absent fields are
// backfilled by the demographics agent.
type DemographicsAnalysis struct {
	Gender           Gender              `json:"gender"`
	GenderConfidence float64             `json:"gender_confidence"`
	AgeRange         string              `json:"age_range"`
	Profession       ProfessionArchetype `json:"profession"`
	Location         string              `json:"location,omitempty"`
	Appearance       *InferredAppearance `json:"appearance,omitempty"`
}

// VibeProfile is the merged result of personality, demographics, weather, and
// color-season analysis. Created once per job; never mutated after creation.
type VibeProfile struct {
	PersonalityTraits  []string            `json:"personality_traits"`
	Interests          []string            `json:"interests"`
	CommunicationStyle string              `json:"communication_style"`
	AestheticKeywords  []string            `json:"aesthetic_keywords"`
	Energy             string              `json:"energy"`
	VibeSummary        string              `json:"vibe_summary"`
	Gender             Gender              `json:"gender"`
	GenderConfidence   float64             `json:"gender_confidence"`
	AgeRange           string              `json:"age_range"`
	Profession         ProfessionArchetype `json:"profession"`
	Location           string              `json:"location,omitempty"`

	Weather     *WeatherData            `json:"weather,omitempty"`
	Seasonal    *SeasonalRecommendation `json:"seasonal,omitempty"`
	ColorSeason *ColorProfile           `json:"color_season,omitempty"`
	Appearance  *InferredAppearance     `json:"appearance,omitempty"`
}
