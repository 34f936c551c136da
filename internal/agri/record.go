//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package agri holds the synthetic agriculture table: the fixed state and
// crop lists, the coordinate table, the record generator and the ticker
// fixture.
package agri

// Column names as they appear in every tabular export.
const (
	ColState          = "State"
	ColCrop           = "Crop"
	ColLatitude       = "Latitude"
	ColLongitude      = "Longitude"
	ColProductionMT   = "Production_MT"
	ColMarketValueUSD = "Market_Value_USD"
	ColYieldIndex     = "Yield_Index"
)

// Columns returns the export column order.
func Columns() []string {
	return []string{
		ColState, ColCrop, ColLatitude, ColLongitude,
		ColProductionMT, ColMarketValueUSD, ColYieldIndex,
	}
}

// Record is one synthetic state × crop observation.
type Record struct {
	State          string  `json:"state"`
	Crop           string  `json:"crop"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ProductionMT   float64 `json:"production_mt"`
	MarketValueUSD float64 `json:"market_value_usd"`
	YieldIndex     float64 `json:"yield_index"`
}

var states = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

var crops = []string{"Corn", "Soybeans", "Wheat", "Cotton", "Hay", "Rice", "Potatoes", "Sugarcane"}

// States returns the 50 US states in generation order.
func States() []string {
	return append([]string(nil), states...)
}

// Crops returns the 8 crops in generation order.
func Crops() []string {
	return append([]string(nil), crops...)
}
