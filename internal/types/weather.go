package types

// WeatherData is the current or estimated weather for a detected location.
type WeatherData struct {
	Location    string      `json:"location"`
	Temperature int         `json:"temperature"` // Celsius
	Condition   string      `json:"condition"`
	Humidity    int         `json:"humidity"`
	Season      ColorSeason `json:"season"`
}

// SeasonalRecommendation is the clothing guidance derived from WeatherData.
type SeasonalRecommendation struct {
	Season            ColorSeason    `json:"season"`
	TemperatureRange  string         `json:"temperature_range"`
	ClothingWeight    ClothingWeight `json:"clothing_weight"`
	FabricSuggestions []string       `json:"fabric_suggestions"`
	StyleNotes        string         `json:"style_notes"`
}
