package agri

import (
	"testing"
)

func TestTicker(t *testing.T) {
	entries := Ticker()
	if len(entries) != 5 {
		t.Fatalf("Expected 5 ticker entries, got %d", len(entries))
	}

	tests := []struct {
		name   string
		price  string
		change string
		up     bool
		text   string
	}{
		{"Corn", "4.56", "0.12", true, "Corn: $4.56 ▲ 0.12%"},
		{"Soybeans", "12.45", "-0.05", false, "Soybeans: $12.45 ▼ 0.05%"},
		{"Wheat", "6.78", "0.34", true, "Wheat: $6.78 ▲ 0.34%"},
		{"Cotton", "0.89", "-0.01", false, "Cotton: $0.89 ▼ 0.01%"},
		{"Sugar", "0.22", "0.02", true, "Sugar: $0.22 ▲ 0.02%"},
	}

	for i, tt := range tests {
		e := entries[i]
		if e.Name != tt.name {
			t.Errorf("Entry %d: expected name %s, got %s", i, tt.name, e.Name)
		}
		if e.Price.String() != tt.price {
			t.Errorf("%s: expected price %s, got %s", tt.name, tt.price, e.Price.String())
		}
		if e.Change.String() != tt.change {
			t.Errorf("%s: expected change %s, got %s", tt.name, tt.change, e.Change.String())
		}
		if e.Up() != tt.up {
			t.Errorf("%s: expected Up()=%v", tt.name, tt.up)
		}
		if e.String() != tt.text {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.text, e.String())
		}
	}
}

func TestTickerIsStable(t *testing.T) {
	a := Ticker()
	a[0].Name = "Changed"
	if Ticker()[0].Name != "Corn" {
		t.Error("Ticker() should return a fresh slice")
	}
}
