package analysis

import (
	"sort"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// NotApplicable is reported when an aggregate has no input rows.
const NotApplicable = "N/A"

// Totals sums production and market value. Both are zero for no rows.
func Totals(records []agri.Record) (production, value float64) {
	for _, r := range records {
		production += r.ProductionMT
		value += r.MarketValueUSD
	}
	return production, value
}

// TopCrop returns the crop with the largest summed production, or
// NotApplicable when records is empty. Ties go to the crop seen first.
func TopCrop(records []agri.Record) string {
	sums := make(map[string]float64)
	var order []string
	for _, r := range records {
		if _, ok := sums[r.Crop]; !ok {
			order = append(order, r.Crop)
		}
		sums[r.Crop] += r.ProductionMT
	}
	if len(order) == 0 {
		return NotApplicable
	}

	best := order[0]
	for _, c := range order[1:] {
		if sums[c] > sums[best] {
			best = c
		}
	}
	return best
}

// CropFigure is one crop's contribution inside a MapPoint.
type CropFigure struct {
	Crop           string  `json:"crop"`
	ProductionMT   float64 `json:"production_mt"`
	MarketValueUSD float64 `json:"market_value_usd"`
}

// MapPoint is the per-state aggregate drawn as a map column.
type MapPoint struct {
	State          string       `json:"state"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	ProductionMT   float64      `json:"production_mt"`
	MarketValueUSD float64      `json:"market_value_usd"`
	Crops          []CropFigure `json:"crops"`
}

// MapPoints groups records by state, summing production and value and
// keeping each crop's figures for the tooltip breakdown. Points are
// ordered by state name.
func MapPoints(records []agri.Record) []MapPoint {
	byState := make(map[string]*MapPoint)
	for _, r := range records {
		p, ok := byState[r.State]
		if !ok {
			p = &MapPoint{State: r.State, Latitude: r.Latitude, Longitude: r.Longitude}
			byState[r.State] = p
		}
		p.ProductionMT += r.ProductionMT
		p.MarketValueUSD += r.MarketValueUSD
		p.Crops = append(p.Crops, CropFigure{
			Crop:           r.Crop,
			ProductionMT:   r.ProductionMT,
			MarketValueUSD: r.MarketValueUSD,
		})
	}

	points := make([]MapPoint, 0, len(byState))
	for _, p := range byState {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].State < points[j].State })
	return points
}

// CropYield is the mean yield index of one crop.
type CropYield struct {
	Crop       string  `json:"crop"`
	YieldIndex float64 `json:"yield_index"`
}

// MeanYieldByCrop averages the yield index per crop, ordered by crop name.
func MeanYieldByCrop(records []agri.Record) []CropYield {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Crop] += r.YieldIndex
		counts[r.Crop]++
	}

	out := make([]CropYield, 0, len(sums))
	for crop, sum := range sums {
		out = append(out, CropYield{Crop: crop, YieldIndex: sum / float64(counts[crop])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Crop < out[j].Crop })
	return out
}

// StateValue is a state's summed market value.
type StateValue struct {
	State          string  `json:"state"`
	MarketValueUSD float64 `json:"market_value_usd"`
}

// TopStatesByValue sums market value per state and returns the n largest,
// descending. n <= 0 returns every state.
func TopStatesByValue(records []agri.Record, n int) []StateValue {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[r.State] += r.MarketValueUSD
	}

	out := make([]StateValue, 0, len(sums))
	for state, v := range sums {
		out = append(out, StateValue{State: state, MarketValueUSD: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MarketValueUSD != out[j].MarketValueUSD {
			return out[i].MarketValueUSD > out[j].MarketValueUSD
		}
		return out[i].State < out[j].State
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
