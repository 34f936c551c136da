package agri

// Coordinate is an approximate state center in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FallbackCoordinate is the continental center used for unknown states.
var FallbackCoordinate = Coordinate{Lat: 39.8283, Lon: -98.5795}

var stateCoords = map[string]Coordinate{
	"California":     {36.7783, -119.4179},
	"Texas":          {31.9686, -99.9018},
	"Iowa":           {41.8780, -93.0977},
	"Illinois":       {40.6331, -89.3985},
	"Nebraska":       {41.1254, -98.2681},
	"Kansas":         {38.5266, -96.7265},
	"Minnesota":      {46.7296, -94.6859},
	"Indiana":        {40.2672, -86.1349},
	"North Dakota":   {47.5289, -99.7840},
	"South Dakota":   {44.2998, -99.4388},
	"Ohio":           {40.4173, -82.9071},
	"Wisconsin":      {43.7844, -88.7879},
	"Missouri":       {37.9643, -91.8318},
	"Arkansas":       {34.9697, -92.3731},
	"North Carolina": {35.7596, -79.0193},
	"Michigan":       {44.3148, -85.6024},
	"Washington":     {47.7511, -120.7401},
	"Idaho":          {44.0682, -114.7420},
	"Colorado":       {39.5501, -105.7821},
	"Florida":        {27.6648, -81.5158},
	"Georgia":        {32.1656, -82.9001},
	"Mississippi":    {32.3547, -89.3985},
	"Louisiana":      {30.9843, -91.9623},
	"Oklahoma":       {35.0078, -97.0929},
	"Kentucky":       {37.8393, -84.2700},
	"Tennessee":      {35.5175, -86.5804},
	"Alabama":        {32.3182, -86.9023},
	"Montana":        {46.8797, -110.3626},
	"Oregon":         {43.8041, -120.5542},
	"Arizona":        {34.0489, -111.0937},
	"New York":       {43.0000, -75.0000},
	"Pennsylvania":   {41.2033, -77.1945},
	"Virginia":       {37.4316, -78.6569},
	"Utah":           {39.3210, -111.4312},
	"Maryland":       {39.0458, -76.6413},
	"New Jersey":     {40.0583, -74.4057},
	"West Virginia":  {38.5976, -80.4549},
	"South Carolina": {33.8361, -81.1637},
	"New Mexico":     {34.5199, -105.8701},
	"Maine":          {45.2538, -69.4455},
	"Nevada":         {38.8026, -116.4194},
	"Wyoming":        {43.0760, -107.2903},
	"New Hampshire":  {43.1939, -71.5724},
	"Vermont":        {44.5588, -72.5778},
	"Massachusetts":  {42.4072, -71.3824},
	"Hawaii":         {20.7967, -156.3319},
	"Rhode Island":   {41.5801, -71.4774},
	"Connecticut":    {41.6032, -73.0877},
	"Delaware":       {38.9108, -75.5277},
	"Alaska":         {63.5867, -154.4931},
}

// Coordinates returns a copy of the state coordinate table.
func Coordinates() map[string]Coordinate {
	out := make(map[string]Coordinate, len(stateCoords))
	for k, v := range stateCoords {
		out[k] = v
	}
	return out
}

// Lookup returns the coordinate for state, or FallbackCoordinate.
func Lookup(coords map[string]Coordinate, state string) Coordinate {
	if c, ok := coords[state]; ok {
		return c
	}
	return FallbackCoordinate
}
