package species

// Size holds length data and everyday comparison objects for one species.
type Size struct {
	AvgLengthCM int      `json:"avg_length_cm"`
	MaxLengthCM int      `json:"max_length_cm"`
	Comparisons []string `json:"comparisons"`
	Description string   `json:"description"`
}

var defaultSize = Size{
	AvgLengthCM: 30,
	MaxLengthCM: 50,
	Comparisons: []string{"Unknown", "Unknown"},
	Description: "Size data not available for this species.",
}

var sizeTable = map[string]Size{
	"Black Sea Sprat": {
		AvgLengthCM: 10, MaxLengthCM: 15,
		Comparisons: []string{"Smartphone", "Pencil"},
		Description: "Black Sea Sprats are small fish, typically around 10 cm in length, similar to the size of a standard smartphone.",
	},
	"Gilthead Bream": {
		AvgLengthCM: 35, MaxLengthCM: 60,
		Comparisons: []string{"Laptop", "Ruler"},
		Description: "Gilthead Breams typically grow to 35 cm, about the width of a laptop screen, but can reach up to 60 cm.",
	},
	"Horse Mackerel": {
		AvgLengthCM: 30, MaxLengthCM: 50,
		Comparisons: []string{"Tablet", "Keyboard"},
		Description: "Horse Mackerels average around 30 cm in length, comparable to a standard tablet device.",
	},
	"Red Mullet": {
		AvgLengthCM: 25, MaxLengthCM: 40,
		Comparisons: []string{"Book", "Tablet"},
		Description: "Red Mullets typically reach 25 cm in length, about the size of a paperback book.",
	},
	"Red Sea Bream": {
		AvgLengthCM: 40, MaxLengthCM: 70,
		Comparisons: []string{"Laptop", "Backpack"},
		Description: "Red Sea Breams average 40 cm in length, similar to the width of a standard laptop.",
	},
	"Sea Bass": {
		AvgLengthCM: 50, MaxLengthCM: 100,
		Comparisons: []string{"Guitar", "Baseball Bat"},
		Description: "Sea Bass typically grow to 50 cm, about the size of a small guitar, but can reach up to 1 meter in length.",
	},
	"Shrimp": {
		AvgLengthCM: 8, MaxLengthCM: 15,
		Comparisons: []string{"Credit Card", "Pen"},
		Description: "Shrimps are typically small, around 8 cm in length, similar to the size of a pen or credit card.",
	},
	"Striped Red Mullet": {
		AvgLengthCM: 25, MaxLengthCM: 40,
		Comparisons: []string{"Book", "Tablet"},
		Description: "Striped Red Mullets typically reach 25 cm in length, about the size of a paperback book.",
	},
	"Trout": {
		AvgLengthCM: 40, MaxLengthCM: 80,
		Comparisons: []string{"Laptop", "Umbrella"},
		Description: "Trout typically grow to 40 cm, about the length of a laptop, but can reach up to 80 cm in favorable conditions.",
	},
}

// SizeData returns the size record for a species, or the default.
func SizeData(name string) Size {
	if s, ok := sizeTable[name]; ok {
		return s
	}
	return defaultSize
}
