package analysis

import (
	"fmt"
	"strings"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// TopStatesLimit is how many states the value-distribution chart shows.
const TopStatesLimit = 10

// Summary is the executive summary shown above every view.
type Summary struct {
	Title          string  `json:"title"`
	Rows           int     `json:"rows"`
	ProductionMT   float64 `json:"production_mt"`
	MarketValueUSD float64 `json:"market_value_usd"`
	TopCrop        string  `json:"top_crop"`
}

// Summarize computes totals and the top crop for an already filtered set.
func Summarize(f Filter, filtered []agri.Record) Summary {
	production, value := Totals(filtered)
	return Summary{
		Title:          SummaryTitle(f),
		Rows:           len(filtered),
		ProductionMT:   production,
		MarketValueUSD: value,
		TopCrop:        TopCrop(filtered),
	}
}

// SummaryTitle names the current selection, e.g. "IOWA | CORN PERFORMANCE".
func SummaryTitle(f Filter) string {
	title := "USA NATIONAL"
	if f.StateSelected() {
		title = strings.ToUpper(f.State)
	}
	sub := "AGRI-TOTALS"
	if f.CropSelected() {
		sub = strings.ToUpper(f.Crop)
	}
	return fmt.Sprintf("%s | %s PERFORMANCE", title, sub)
}

// View is the map camera for the current selection.
type View struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Pitch     int     `json:"pitch"`
}

// NationalView frames the continental US.
var NationalView = View{Latitude: 37.0902, Longitude: -95.7129, Zoom: 3, Pitch: 45}

// ViewFor zooms onto the selected state when the filtered set has rows,
// otherwise it returns NationalView.
func ViewFor(f Filter, filtered []agri.Record) View {
	if !f.StateSelected() || len(filtered) == 0 {
		return NationalView
	}
	return View{
		Latitude:  filtered[0].Latitude,
		Longitude: filtered[0].Longitude,
		Zoom:      6,
		Pitch:     55,
	}
}

// FormatBigNumber renders a value whose base unit is millions.
func FormatBigNumber(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.2fT", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.2fB", v/1_000)
	default:
		return fmt.Sprintf("%.2fM", v)
	}
}
