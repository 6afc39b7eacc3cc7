package types

// StyleRecommendation maps a vibe to fashion archetypes and styling guidance.
// Archetype names are expected to reference the catalog's archetype set; the
// resolver does not validate them, and a mismatch degrades gracefully in
// product matching.
type StyleRecommendation struct {
	PrimaryArchetype   string     `json:"primary_archetype"`
	SecondaryArchetype string     `json:"secondary_archetype"`
	ColorPalette       []string   `json:"color_palette"`
	StyleNotes         string     `json:"style_notes"`
	Avoid              []string   `json:"avoid"`
	GenderNotes        string     `json:"gender_notes,omitempty"`
	ProfessionTips     string     `json:"profession_tips,omitempty"`
	SeasonalNotes      string     `json:"seasonal_notes,omitempty"`
	ColorSeasonPalette []string   `json:"color_season_palette,omitempty"`
	BudgetTier         BudgetTier `json:"budget_tier"`
	SignaturePieces    []string   `json:"signature_pieces,omitempty"`
}

// Archetype is a named fashion style category from the catalog's fixed set.
type Archetype struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords,omitempty"`
	ExampleBrands []string `json:"example_brands,omitempty"`
}
