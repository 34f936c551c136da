package agri

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TickerEntry is one row of the commodity ticker fixture.
type TickerEntry struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Change decimal.Decimal `json:"change"`
}

// Up reports whether the change is strictly positive.
func (e TickerEntry) Up() bool {
	return e.Change.IsPositive()
}

// Arrow returns the direction marker shown next to the change.
func (e TickerEntry) Arrow() string {
	if e.Up() {
		return "▲"
	}
	return "▼"
}

// String renders the entry the way the ticker strip shows it.
func (e TickerEntry) String() string {
	return fmt.Sprintf("%s: $%s %s %s%%", e.Name, e.Price.String(), e.Arrow(), e.Change.Abs().String())
}

// Ticker returns the fixed commodity snapshot. The values are constants,
// not live prices.
func Ticker() []TickerEntry {
	return []TickerEntry{
		{Name: "Corn", Price: decimal.RequireFromString("4.56"), Change: decimal.RequireFromString("0.12")},
		{Name: "Soybeans", Price: decimal.RequireFromString("12.45"), Change: decimal.RequireFromString("-0.05")},
		{Name: "Wheat", Price: decimal.RequireFromString("6.78"), Change: decimal.RequireFromString("0.34")},
		{Name: "Cotton", Price: decimal.RequireFromString("0.89"), Change: decimal.RequireFromString("-0.01")},
		{Name: "Sugar", Price: decimal.RequireFromString("0.22"), Change: decimal.RequireFromString("0.02")},
	}
}
