package species

// Highlight is a named rectangle drawn on the distribution map.
// Bounds are [[south, west], [north, east]] in degrees.
type Highlight struct {
	Name   string        `json:"name"`
	Bounds [2][2]float64 `json:"bounds"`
}

// Distribution describes where a species occurs and how to frame the map.
type Distribution struct {
	Regions     []string    `json:"regions"`
	Center      [2]float64  `json:"center"`
	Zoom        int         `json:"zoom"`
	Description string      `json:"description"`
	Highlights  []Highlight `json:"highlights"`
}

var (
	mediterraneanBox = Highlight{Name: "Mediterranean Sea", Bounds: [2][2]float64{{30, -5}, {45, 35}}}
	blackSeaBox      = Highlight{Name: "Black Sea", Bounds: [2][2]float64{{40, 27}, {47, 42}}}
	tropicalBox      = Highlight{Name: "Tropical Regions", Bounds: [2][2]float64{{-23.5, -180}, {23.5, 180}}}
	troutBoxes       = []Highlight{
		{Name: "North America", Bounds: [2][2]float64{{30, -130}, {60, -60}}},
		{Name: "Europe", Bounds: [2][2]float64{{40, -10}, {70, 30}}},
		{Name: "Asia", Bounds: [2][2]float64{{40, 30}, {70, 150}}},
	}
)

var defaultDistribution = Distribution{
	Regions:     []string{"Unknown"},
	Center:      [2]float64{0, 0},
	Zoom:        1,
	Description: "Geographic distribution data not available for this species.",
}

var distributionTable = map[string]Distribution{
	"Black Sea Sprat": {
		Regions:     []string{"Black Sea", "Mediterranean Sea", "Eastern Atlantic"},
		Center:      [2]float64{41.0, 29.0},
		Zoom:        4,
		Description: "Primarily found in the Black Sea and parts of the Mediterranean Sea.",
		Highlights:  []Highlight{mediterraneanBox, blackSeaBox},
	},
	"Gilthead Bream": {
		Regions:     []string{"Mediterranean Sea", "Eastern Atlantic"},
		Center:      [2]float64{38.0, 15.0},
		Zoom:        4,
		Description: "Common throughout the Mediterranean Sea and along the Eastern Atlantic coast.",
		Highlights:  []Highlight{mediterraneanBox},
	},
	"Horse Mackerel": {
		Regions:     []string{"Mediterranean Sea", "Eastern Atlantic", "North Sea"},
		Center:      [2]float64{45.0, 0.0},
		Zoom:        3,
		Description: "Widely distributed in the Eastern Atlantic from Norway to South Africa, including the Mediterranean.",
		Highlights:  []Highlight{mediterraneanBox},
	},
	"Red Mullet": {
		Regions:     []string{"Mediterranean Sea", "Black Sea", "Eastern Atlantic"},
		Center:      [2]float64{38.0, 15.0},
		Zoom:        4,
		Description: "Common in the Mediterranean Sea and Eastern Atlantic from the English Channel to Senegal.",
		Highlights:  []Highlight{mediterraneanBox, blackSeaBox},
	},
	"Red Sea Bream": {
		Regions:     []string{"Mediterranean Sea", "Eastern Atlantic"},
		Center:      [2]float64{38.0, 15.0},
		Zoom:        4,
		Description: "Found in the Mediterranean Sea and Eastern Atlantic from Portugal to Angola.",
		Highlights:  []Highlight{mediterraneanBox},
	},
	"Sea Bass": {
		Regions:     []string{"Mediterranean Sea", "Black Sea", "Eastern Atlantic"},
		Center:      [2]float64{45.0, 0.0},
		Zoom:        3,
		Description: "Distributed throughout the Mediterranean, Black Sea, and Eastern Atlantic from Norway to Senegal.",
		Highlights:  []Highlight{mediterraneanBox, blackSeaBox},
	},
	"Shrimp": {
		Regions:     []string{"Global - Tropical and Subtropical Waters"},
		Center:      [2]float64{0.0, 0.0},
		Zoom:        2,
		Description: "Various shrimp species are found in tropical and subtropical waters worldwide, particularly in coral reef environments.",
		Highlights:  []Highlight{tropicalBox},
	},
	"Striped Red Mullet": {
		Regions:     []string{"Mediterranean Sea", "Eastern Atlantic"},
		Center:      [2]float64{38.0, 15.0},
		Zoom:        4,
		Description: "Common in the Mediterranean Sea and Eastern Atlantic from the English Channel to the Canary Islands.",
		Highlights:  []Highlight{mediterraneanBox},
	},
	"Trout": {
		Regions:     []string{"North America", "Europe", "Asia"},
		Center:      [2]float64{45.0, 0.0},
		Zoom:        2,
		Description: "Various trout species are found in cold, clear freshwater environments across North America, Europe, and Asia.",
		Highlights:  troutBoxes,
	},
}

// Range returns the distribution record for a species, or the default.
func Range(name string) Distribution {
	if d, ok := distributionTable[name]; ok {
		return d
	}
	return defaultDistribution
}
