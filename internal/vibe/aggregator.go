package vibe

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/drip-agent/internal/colorseason"
	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/types"
	"github.com/jonathan/drip-agent/internal/weather"
)

// Aggregator runs the personality, demographics, and weather analyses
// concurrently and merges them into one VibeProfile, attaching a color-season
// profile derived from the inferred appearance.
type Aggregator struct {
	personality  *PersonalityAgent
	demographics *DemographicsAgent
	weather      *weather.Service
}

// NewAggregator creates an aggregator from a shared LLM client and a weather
// service.
func NewAggregator(client llm.Client, weatherSvc *weather.Service) *Aggregator {
	return &Aggregator{
		personality:  NewPersonalityAgent(client),
		demographics: NewDemographicsAgent(client),
		weather:      weatherSvc,
	}
}

// Aggregate produces the merged VibeProfile for a profile. A personality
// failure aborts and discards the other results; demographics and weather
// degrade internally and never fail.
func (a *Aggregator) Aggregate(ctx context.Context, profile *types.Profile) (*types.VibeProfile, error) {
	var (
		personality  *types.PersonalityAnalysis
		demographics *types.DemographicsAnalysis
		weatherData  *types.WeatherData
		seasonal     *types.SeasonalRecommendation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		personality, err = a.personality.Analyze(gctx, profile)
		return err
	})
	g.Go(func() error {
		demographics = a.demographics.Analyze(gctx, profile)
		return nil
	})
	g.Go(func() error {
		weatherData, seasonal = a.weather.Advise(gctx, profile.Location)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The profile's own location beats the inferred one, but an inferred
	// location is better than no weather at all.
	if weatherData == nil && demographics.Location != "" {
		weatherData, seasonal = a.weather.Advise(ctx, demographics.Location)
	}

	colorProfile := colorseason.Classify(*demographics.Appearance)

	return &types.VibeProfile{
		PersonalityTraits:  personality.PersonalityTraits,
		Interests:          personality.Interests,
		CommunicationStyle: personality.CommunicationStyle,
		AestheticKeywords:  personality.AestheticKeywords,
		Energy:             personality.Energy,
		VibeSummary:        personality.VibeSummary,
		Gender:             demographics.Gender,
		GenderConfidence:   demographics.GenderConfidence,
		AgeRange:           demographics.AgeRange,
		Profession:         demographics.Profession,
		Location:           firstNonEmpty(profile.Location, demographics.Location),
		Weather:            weatherData,
		Seasonal:           seasonal,
		ColorSeason:        &colorProfile,
		Appearance:         demographics.Appearance,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
