// Package weather maps a location string to weather conditions and a
// clothing-weight recommendation. An external lookup is attempted when an
// API key is configured; every failure path falls back to a deterministic
// estimate, so callers never see an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/drip-agent/internal/types"
)

const (
	geocodeURL = "https://api.openweathermap.org/geo/1.0/direct"
	currentURL = "https://api.openweathermap.org/data/2.5/weather"

	lookupTimeout = 10 * time.Second
)

// Service resolves locations to weather data. Construct with NewService;
// the zero value is not usable.
type Service struct {
	apiKey string
	client *http.Client
	now    func() time.Time
}

// NewService creates a weather service. An empty apiKey disables the
// external lookup entirely; the fallback table is used instead.
func NewService(apiKey string) *Service {
	return &Service{
		apiKey: apiKey,
		client: &http.Client{Timeout: lookupTimeout},
		now:    time.Now,
	}
}

// Advise returns weather data and a clothing recommendation for a location.
// An empty location returns nil, nil. This function never fails.
func (s *Service) Advise(ctx context.Context, location string) (*types.WeatherData, *types.SeasonalRecommendation) {
	if strings.TrimSpace(location) == "" {
		return nil, nil
	}

	data := s.lookup(ctx, location)
	if data == nil {
		data = s.estimate(location)
	}
	rec := Recommend(*data)
	return data, &rec
}

// lookup queries the external weather API. Returns nil on any failure so the
// caller falls back to the deterministic estimate.
func (s *Service) lookup(ctx context.Context, location string) *types.WeatherData {
	if s.apiKey == "" {
		return nil
	}

	lat, lon, err := s.geocode(ctx, location)
	if err != nil {
		return nil
	}

	reqURL := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", currentURL, lat, lon, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}
	if len(payload.Weather) == 0 {
		return nil
	}

	return &types.WeatherData{
		Location:    location,
		Temperature: int(payload.Main.Temp + 0.5),
		Condition:   payload.Weather[0].Main,
		Humidity:    payload.Main.Humidity,
		Season:      seasonFor(lat, s.now().Month()),
	}
}

func (s *Service) geocode(ctx context.Context, location string) (lat, lon float64, err error) {
	reqURL := fmt.Sprintf("%s?q=%s&limit=1&appid=%s", geocodeURL, url.QueryEscape(location), s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode results for %q", location)
	}
	return results[0].Lat, results[0].Lon, nil
}

// climateEntry is one row of the fallback table matched by location
// substring, evaluated in order.
type climateEntry struct {
	keywords  []string
	baseTemp  int
	condition string
	latitude  float64
}

var climateTable = []climateEntry{
	{[]string{"miami", "florida", "texas", "arizona", "dubai", "singapore", "mumbai", "bangkok", "hawaii"}, 30, "Sunny", 25},
	{[]string{"canada", "alaska", "russia", "norway", "sweden", "finland", "iceland", "minnesota", "chicago"}, 5, "Cloudy", 55},
	{[]string{"san francisco", "sf", "bay area"}, 18, "Foggy", 37},
	{[]string{"new york", "nyc", "boston"}, 15, "Partly Cloudy", 41},
	{[]string{"los angeles", "la", "san diego"}, 24, "Sunny", 34},
	{[]string{"seattle", "portland", "vancouver"}, 14, "Rainy", 47},
	{[]string{"london", "uk", "england"}, 12, "Cloudy", 51},
	{[]string{"paris", "france"}, 14, "Partly Cloudy", 48},
	{[]string{"berlin", "germany"}, 10, "Cloudy", 52},
	{[]string{"australia", "sydney", "melbourne"}, 22, "Sunny", -34},
}

// Defaults when no table row matches.
const (
	defaultTemp      = 20
	defaultCondition = "Clear"
	defaultLatitude  = 40
	defaultHumidity  = 60
)

// estimate produces deterministic weather from the fallback table plus a
// seasonal temperature offset.
func (s *Service) estimate(location string) *types.WeatherData {
	loc := strings.ToLower(location)

	baseTemp := defaultTemp
	condition := defaultCondition
	latitude := float64(defaultLatitude)
	for _, entry := range climateTable {
		if containsAny(loc, entry.keywords) {
			baseTemp = entry.baseTemp
			condition = entry.condition
			latitude = entry.latitude
			break
		}
	}

	season := seasonFor(latitude, s.now().Month())
	return &types.WeatherData{
		Location:    location,
		Temperature: baseTemp + seasonalOffset(season),
		Condition:   condition,
		Humidity:    defaultHumidity,
		Season:      season,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// seasonFor computes the meteorological season from latitude hemisphere and
// calendar month. Latitudes >= 0 count as northern.
func seasonFor(latitude float64, month time.Month) types.ColorSeason {
	northern := latitude >= 0
	var season types.ColorSeason
	switch {
	case month >= time.March && month <= time.May:
		season = types.SeasonSpring
	case month >= time.June && month <= time.August:
		season = types.SeasonSummer
	case month >= time.September && month <= time.November:
		season = types.SeasonAutumn
	default:
		season = types.SeasonWinter
	}
	if northern {
		return season
	}
	// Southern hemisphere is shifted by two quarters.
	switch season {
	case types.SeasonSpring:
		return types.SeasonAutumn
	case types.SeasonSummer:
		return types.SeasonWinter
	case types.SeasonAutumn:
		return types.SeasonSpring
	default:
		return types.SeasonSummer
	}
}

func seasonalOffset(season types.ColorSeason) int {
	switch season {
	case types.SeasonSummer:
		return 8
	case types.SeasonWinter:
		return -10
	case types.SeasonAutumn:
		return -3
	default:
		return 0
	}
}
