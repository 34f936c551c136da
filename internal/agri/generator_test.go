package agri

import (
	"reflect"
	"testing"

	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
)

// fixedSource returns the lower bound of every range.
type fixedSource struct{}

func (fixedSource) IntN(min, max int) int            { return min }
func (fixedSource) Float64(min, max float64) float64 { return min }

func TestGenerateRowCount(t *testing.T) {
	records := GenerateDefault(datagen.NewFakerWithSeed(0))

	want := len(States()) * len(Crops())
	if len(records) != want {
		t.Fatalf("Expected %d records, got %d", want, len(records))
	}
	if want != 400 {
		t.Errorf("Expected 50 states x 8 crops, got %d", want)
	}

	seen := make(map[[2]string]bool)
	for _, r := range records {
		key := [2]string{r.State, r.Crop}
		if seen[key] {
			t.Errorf("Duplicate record for %s/%s", r.State, r.Crop)
		}
		seen[key] = true
	}
}

func TestGenerateValueRanges(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		for _, r := range GenerateDefault(datagen.NewFakerWithSeed(seed)) {
			if r.ProductionMT < 0 {
				t.Errorf("%s/%s: negative production %f", r.State, r.Crop, r.ProductionMT)
			}
			if r.MarketValueUSD < 0 {
				t.Errorf("%s/%s: negative market value %f", r.State, r.Crop, r.MarketValueUSD)
			}
			if r.YieldIndex < 0.8 || r.YieldIndex > 1.2 {
				t.Errorf("%s/%s: yield index %f out of [0.8, 1.2]", r.State, r.Crop, r.YieldIndex)
			}
		}
	}
}

func TestGenerateOrdering(t *testing.T) {
	records := Generate(fixedSource{}, []string{"Iowa", "Texas"}, []string{"Corn", "Wheat"}, Coordinates())

	want := [][2]string{{"Iowa", "Corn"}, {"Iowa", "Wheat"}, {"Texas", "Corn"}, {"Texas", "Wheat"}}
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(records))
	}
	for i, w := range want {
		if records[i].State != w[0] || records[i].Crop != w[1] {
			t.Errorf("Row %d: expected %s/%s, got %s/%s", i, w[0], w[1], records[i].State, records[i].Crop)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	states := []string{"Iowa", "Texas"}
	crops := []string{"Corn", "Wheat"}

	a := Generate(datagen.NewFakerWithSeed(2025), states, crops, Coordinates())
	b := Generate(datagen.NewFakerWithSeed(2025), states, crops, Coordinates())

	if len(a) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same seed produced different tables:\n%v\n%v", a, b)
	}

	c := Generate(datagen.NewFakerWithSeed(2026), states, crops, Coordinates())
	if reflect.DeepEqual(a, c) {
		t.Error("Different seeds produced identical tables")
	}
}

func TestGenerateMultipliers(t *testing.T) {
	tests := []struct {
		state string
		crop  string
		want  float64
	}{
		// base 10, yield 50, price 2
		{"Iowa", "Corn", 10 * 10 * 50},
		{"Illinois", "Corn", 10 * 10 * 50},
		{"Nebraska", "Corn", 10 * 10 * 50},
		{"Idaho", "Potatoes", 10 * 8 * 50},
		{"Iowa", "Wheat", 10 * 50},
		{"Idaho", "Corn", 10 * 50},
		{"California", "Corn", 10 * 50},
		{"Texas", "Potatoes", 10 * 50},
	}

	for _, tt := range tests {
		t.Run(tt.state+"/"+tt.crop, func(t *testing.T) {
			r := Generate(fixedSource{}, []string{tt.state}, []string{tt.crop}, Coordinates())[0]
			if r.ProductionMT != tt.want {
				t.Errorf("Expected production %f, got %f", tt.want, r.ProductionMT)
			}
			if r.MarketValueUSD != tt.want*2 {
				t.Errorf("Expected market value %f, got %f", tt.want*2, r.MarketValueUSD)
			}
			if r.YieldIndex != 0.8 {
				t.Errorf("Expected yield index 0.8, got %f", r.YieldIndex)
			}
		})
	}
}

func TestCaliforniaFruitsRuleIsUnreachable(t *testing.T) {
	for _, c := range Crops() {
		if c == "Fruits" {
			t.Fatal("Fruits should not be a generated crop")
		}
	}
	// The rule still applies if a caller supplies the crop explicitly.
	r := Generate(fixedSource{}, []string{"California"}, []string{"Fruits"}, Coordinates())[0]
	if r.ProductionMT != 10*15*50 {
		t.Errorf("Expected California/Fruits production %d, got %f", 10*15*50, r.ProductionMT)
	}
}

func TestGenerateRounding(t *testing.T) {
	for _, r := range GenerateDefault(datagen.NewFakerWithSeed(99)) {
		for name, v := range map[string]float64{
			"production": r.ProductionMT,
			"value":      r.MarketValueUSD,
			"index":      r.YieldIndex,
		} {
			if v != round2(v) {
				t.Errorf("%s/%s: %s %v not rounded to 2 decimals", r.State, r.Crop, name, v)
			}
		}
	}
}

func TestGenerateCoordinates(t *testing.T) {
	records := Generate(fixedSource{}, []string{"Iowa", "Atlantis"}, []string{"Corn"}, Coordinates())

	if records[0].Latitude != 41.8780 || records[0].Longitude != -93.0977 {
		t.Errorf("Iowa coordinates mismatch: %f, %f", records[0].Latitude, records[0].Longitude)
	}
	if records[1].Latitude != FallbackCoordinate.Lat || records[1].Longitude != FallbackCoordinate.Lon {
		t.Errorf("Unknown state should use fallback, got %f, %f", records[1].Latitude, records[1].Longitude)
	}
}

func TestCoordinateTableComplete(t *testing.T) {
	coords := Coordinates()
	for _, s := range States() {
		if _, ok := coords[s]; !ok {
			t.Errorf("Missing coordinates for %s", s)
		}
	}
}

func TestStaticListsAreCopies(t *testing.T) {
	s := States()
	s[0] = "Mutated"
	if States()[0] != "Alabama" {
		t.Error("States() should return a copy")
	}

	c := Coordinates()
	delete(c, "Iowa")
	if _, ok := Coordinates()["Iowa"]; !ok {
		t.Error("Coordinates() should return a copy")
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	if got := Generate(fixedSource{}, nil, Crops(), Coordinates()); len(got) != 0 {
		t.Errorf("Expected no records for empty states, got %d", len(got))
	}
	if got := Generate(fixedSource{}, States(), nil, Coordinates()); len(got) != 0 {
		t.Errorf("Expected no records for empty crops, got %d", len(got))
	}
}
