// Package analysis filters and aggregates the generated records into the
// shapes the map, charts and summary cards consume.
package analysis

import (
	"sort"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// Sentinel selections meaning "no filter".
const (
	AllCrops  = "All Crops"
	AllStates = "All States"
)

// Filter selects records by exact crop and/or state. Empty fields and the
// All* sentinels pass everything through.
type Filter struct {
	Crop  string `json:"crop" form:"crop"`
	State string `json:"state" form:"state"`
}

// CropSelected reports whether the filter narrows by crop.
func (f Filter) CropSelected() bool {
	return f.Crop != "" && f.Crop != AllCrops
}

// StateSelected reports whether the filter narrows by state.
func (f Filter) StateSelected() bool {
	return f.State != "" && f.State != AllStates
}

// Match reports whether r passes the filter.
func (f Filter) Match(r agri.Record) bool {
	if f.CropSelected() && r.Crop != f.Crop {
		return false
	}
	if f.StateSelected() && r.State != f.State {
		return false
	}
	return true
}

// Apply returns the matching records in input order. The input slice is
// never modified.
func (f Filter) Apply(records []agri.Record) []agri.Record {
	out := make([]agri.Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// CropOptions returns AllCrops followed by the sorted distinct crops.
func CropOptions(records []agri.Record) []string {
	return options(AllCrops, records, func(r agri.Record) string { return r.Crop })
}

// StateOptions returns AllStates followed by the sorted distinct states.
func StateOptions(records []agri.Record) []string {
	return options(AllStates, records, func(r agri.Record) string { return r.State })
}

func options(all string, records []agri.Record, key func(agri.Record) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return append([]string{all}, values...)
}
