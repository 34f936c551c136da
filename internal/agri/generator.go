package agri

import (
	"math"

	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
)

// Sampling ranges; every range is half-open.
const (
	baseMin, baseMax   = 10, 500
	yieldMin, yieldMax = 50.0, 200.0
	priceMin, priceMax = 2.0, 10.0
	indexMin, indexMax = 0.8, 1.2
)

// multiplierRule scales the base output for one exact state/crop match.
type multiplierRule struct {
	states []string
	crop   string
	factor int
}

// Rules are checked in order and the first match wins. "Fruits" is not a
// built-in crop, so the California rule only fires with a custom crop list.
var multiplierRules = []multiplierRule{
	{states: []string{"Iowa", "Illinois", "Nebraska"}, crop: "Corn", factor: 10},
	{states: []string{"California"}, crop: "Fruits", factor: 15},
	{states: []string{"Idaho"}, crop: "Potatoes", factor: 8},
}

func multiplier(state, crop string) int {
	for _, r := range multiplierRules {
		if r.crop != crop {
			continue
		}
		for _, s := range r.states {
			if s == state {
				return r.factor
			}
		}
	}
	return 1
}

// Generate builds one record per (state, crop) pair, state-major and
// crop-minor in input order. Values per pair are drawn from src in a
// fixed order (base, yield per acre, price factor, yield index), so a
// seeded source reproduces the same table.
func Generate(src datagen.Source, states, crops []string, coords map[string]Coordinate) []Record {
	records := make([]Record, 0, len(states)*len(crops))
	for _, state := range states {
		c := Lookup(coords, state)
		for _, crop := range crops {
			base := src.IntN(baseMin, baseMax) * multiplier(state, crop)
			yieldPerAcre := src.Float64(yieldMin, yieldMax)
			production := float64(base) * yieldPerAcre
			marketValue := production * src.Float64(priceMin, priceMax)
			yieldIndex := src.Float64(indexMin, indexMax)

			records = append(records, Record{
				State:          state,
				Crop:           crop,
				Latitude:       c.Lat,
				Longitude:      c.Lon,
				ProductionMT:   round2(production),
				MarketValueUSD: round2(marketValue),
				YieldIndex:     round2(yieldIndex),
			})
		}
	}
	return records
}

// GenerateDefault builds the full 50 × 8 table.
func GenerateDefault(src datagen.Source) []Record {
	return Generate(src, states, crops, stateCoords)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
