package types

// Product is a catalog entry. Static reference data, read-only to the
// pipeline. Gender is "male", "female", or "unisex"; an empty value means
// untagged.
type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Brand           string         `json:"brand"`
	Category        string         `json:"category"`
	Price           float64        `json:"price"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"image_url"`
	BuyLink         string         `json:"buy_link"`
	StyleArchetypes []string       `json:"style_archetypes"`
	Gender          string         `json:"gender,omitempty"`
	Colors          []string       `json:"colors,omitempty"`
	Weight          ClothingWeight `json:"weight,omitempty"`
}

// ScoredProduct is a catalog entry annotated with its match against one
// user's style profile. Ephemeral, recomputed per job; never persisted
// outside a Lookbook.
type ScoredProduct struct {
	Product
	MatchReason       string `json:"match_reason"`
	MatchScore        int    `json:"match_score"`
	GenderMatch       bool   `json:"gender_match"`
	ColorMatch        bool   `json:"color_match"`
	SeasonAppropriate bool   `json:"season_appropriate"`
}

// OutfitSuggestion groups scored products into a wearable combination for an
// occasion. Products are referenced by id, not copied.
type OutfitSuggestion struct {
	Name       string   `json:"name"`
	Occasion   string   `json:"occasion"`
	ProductIDs []string `json:"product_ids"`
	StylingTip string   `json:"styling_tip"`
}

// ShoppingResult is the ranked product output of a job's final stage.
type ShoppingResult struct {
	FreeRecommendations    []ScoredProduct    `json:"free_recommendations"`
	PremiumRecommendations []ScoredProduct    `json:"premium_recommendations"`
	Outfits                []OutfitSuggestion `json:"outfits,omitempty"`
}
