package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/drip-agent/internal/types"
)

func fixedService(month time.Month) *Service {
	s := NewService("")
	s.now = func() time.Time {
		return time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestAdviseEmptyLocation(t *testing.T) {
	data, rec := NewService("").Advise(context.Background(), "   ")
	assert.Nil(t, data)
	assert.Nil(t, rec)
}

func TestAdviseSeattleFallback(t *testing.T) {
	// January in the northern hemisphere: winter shifts the 14°C base down 10.
	data, rec := fixedService(time.January).Advise(context.Background(), "Seattle, WA")
	require.NotNil(t, data)
	require.NotNil(t, rec)

	assert.Equal(t, 4, data.Temperature)
	assert.Equal(t, "Rainy", data.Condition)
	assert.Equal(t, types.SeasonWinter, data.Season)
	assert.Equal(t, 60, data.Humidity)

	assert.Equal(t, types.WeightHeavy, rec.ClothingWeight)
	assert.Contains(t, rec.FabricSuggestions, "water-resistant nylon")
	assert.Contains(t, rec.FabricSuggestions, "waxed cotton")
}

func TestAdviseUnknownLocationDefaults(t *testing.T) {
	data, _ := fixedService(time.April).Advise(context.Background(), "Tbilisi")
	require.NotNil(t, data)
	assert.Equal(t, 20, data.Temperature) // default base, spring offset 0
	assert.Equal(t, "Clear", data.Condition)
	assert.Equal(t, types.SeasonSpring, data.Season)
}

func TestEstimateMatchesBySubstring(t *testing.T) {
	// Table rows match on substring, so "Ulaanbaatar" hits the "la" keyword
	// and gets the Los Angeles row rather than the default.
	data, _ := fixedService(time.April).Advise(context.Background(), "Ulaanbaatar")
	require.NotNil(t, data)
	assert.Equal(t, 24, data.Temperature)
	assert.Equal(t, "Sunny", data.Condition)
}

func TestSeasonalOffsets(t *testing.T) {
	tests := []struct {
		month    time.Month
		wantTemp int
	}{
		{time.July, 22},    // summer +8
		{time.January, 4},  // winter -10
		{time.October, 11}, // autumn -3
		{time.April, 14},   // spring 0
	}
	for _, tt := range tests {
		data, _ := fixedService(tt.month).Advise(context.Background(), "Seattle")
		require.NotNil(t, data)
		assert.Equal(t, tt.wantTemp, data.Temperature, "month %s", tt.month)
	}
}

func TestSeasonForSouthernHemisphere(t *testing.T) {
	assert.Equal(t, types.SeasonWinter, seasonFor(-34, time.July))
	assert.Equal(t, types.SeasonSummer, seasonFor(-34, time.January))
	assert.Equal(t, types.SeasonSummer, seasonFor(47, time.July))
}

func TestAdviseSouthernCity(t *testing.T) {
	// July in Sydney is winter: 22 base - 10.
	data, _ := fixedService(time.July).Advise(context.Background(), "Sydney, Australia")
	require.NotNil(t, data)
	assert.Equal(t, types.SeasonWinter, data.Season)
	assert.Equal(t, 12, data.Temperature)
}

func TestRecommendBands(t *testing.T) {
	tests := []struct {
		temp       int
		wantWeight types.ClothingWeight
	}{
		{32, types.WeightLight},
		{28, types.WeightLight},
		{24, types.WeightLight},
		{15, types.WeightLayered},
		{8, types.WeightMedium},
		{-2, types.WeightHeavy},
	}
	for _, tt := range tests {
		rec := Recommend(types.WeatherData{Temperature: tt.temp, Condition: "Clear", Season: types.SeasonSpring})
		assert.Equal(t, tt.wantWeight, rec.ClothingWeight, "temp %d", tt.temp)
		assert.NotEmpty(t, rec.FabricSuggestions)
	}
}

func TestRecommendRainAddsFabrics(t *testing.T) {
	rec := Recommend(types.WeatherData{Temperature: 15, Condition: "Light Rain", Season: types.SeasonAutumn})
	assert.Equal(t, types.SeasonAutumn, rec.Season)
	assert.Contains(t, rec.FabricSuggestions, "water-resistant nylon")
	assert.Contains(t, rec.FabricSuggestions, "waxed cotton")
	assert.Contains(t, rec.StyleNotes, "rain")

	dry := Recommend(types.WeatherData{Temperature: 15, Condition: "Sunny", Season: types.SeasonAutumn})
	assert.NotContains(t, dry.FabricSuggestions, "waxed cotton")
}

func TestRecommendHot28IncludesBreathable(t *testing.T) {
	rec := Recommend(types.WeatherData{Temperature: 30, Condition: "Sunny", Season: types.SeasonSummer})
	assert.Contains(t, rec.FabricSuggestions, "linen")
	assert.Contains(t, rec.TemperatureRange, "hot")
}
