package weather

import (
	"fmt"
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// Recommend derives a clothing recommendation from weather data using fixed
// temperature bands.
func Recommend(data types.WeatherData) types.SeasonalRecommendation {
	var (
		weight  types.ClothingWeight
		fabrics []string
		notes   string
	)

	switch {
	case data.Temperature >= 28:
		weight = types.WeightLight
		fabrics = []string{"linen", "cotton", "seersucker", "chambray"}
		notes = "Prioritize breathable fabrics and loose silhouettes. Light colors reflect heat."
	case data.Temperature >= 20:
		weight = types.WeightLight
		fabrics = []string{"cotton", "light wool", "jersey", "poplin"}
		notes = "Comfortable single layers work well. A light overshirt covers cooler evenings."
	case data.Temperature >= 12:
		weight = types.WeightLayered
		fabrics = []string{"merino wool", "denim", "flannel", "midweight cotton"}
		notes = "Build outfits in layers that shed easily as the day warms up."
	case data.Temperature >= 5:
		weight = types.WeightMedium
		fabrics = []string{"wool", "corduroy", "heavy denim", "fleece"}
		notes = "A proper jacket is the anchor piece. Knitwear underneath keeps things flexible."
	default:
		weight = types.WeightHeavy
		fabrics = []string{"heavy wool", "down", "shearling", "thermal knits"}
		notes = "Insulation first. An overcoat or parka carries the whole look."
	}

	if strings.Contains(strings.ToLower(data.Condition), "rain") {
		fabrics = append(fabrics, "water-resistant nylon", "waxed cotton")
		notes += " Expect rain, so favor water-resistant outer layers."
	}

	return types.SeasonalRecommendation{
		Season:            data.Season,
		TemperatureRange:  temperatureRange(data.Temperature),
		ClothingWeight:    weight,
		FabricSuggestions: fabrics,
		StyleNotes:        notes,
	}
}

func temperatureRange(temp int) string {
	switch {
	case temp >= 28:
		return fmt.Sprintf("hot (%d°C)", temp)
	case temp >= 20:
		return fmt.Sprintf("warm (%d°C)", temp)
	case temp >= 12:
		return fmt.Sprintf("mild (%d°C)", temp)
	case temp >= 5:
		return fmt.Sprintf("cool (%d°C)", temp)
	default:
		return fmt.Sprintf("cold (%d°C)", temp)
	}
}
