package species

// Conservation is an IUCN Red List style status record.
type Conservation struct {
	Code        string `json:"code"`
	Color       string `json:"color"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var defaultConservation = Conservation{
	Code:        "DD",
	Color:       "#9E9E9E",
	Name:        "Data Deficient",
	Description: "Not enough data to determine conservation status.",
}

var conservationTable = map[string]Conservation{
	"Black Sea Sprat":    {"LC", "#4CAF50", "Least Concern", "Population is stable and widespread in the Black Sea."},
	"Gilthead Bream":     {"LC", "#4CAF50", "Least Concern", "Common throughout the Mediterranean and farmed extensively."},
	"Horse Mackerel":     {"LC", "#4CAF50", "Least Concern", "Abundant in the Eastern Atlantic and Mediterranean."},
	"Red Mullet":         {"LC", "#4CAF50", "Least Concern", "Common throughout its range with stable populations."},
	"Red Sea Bream":      {"NT", "#FF9800", "Near Threatened", "Declining in some areas due to overfishing."},
	"Sea Bass":           {"NT", "#FF9800", "Near Threatened", "Wild populations are declining due to fishing pressure."},
	"Shrimp":             {"LC", "#4CAF50", "Least Concern", "Many species are abundant, though some are threatened by habitat loss."},
	"Striped Red Mullet": {"LC", "#4CAF50", "Least Concern", "Widespread in the Mediterranean with stable populations."},
	"Trout":              {"VU", "#F44336", "Vulnerable", "Some wild populations are declining due to habitat degradation and climate change."},
}

// ConservationStatus returns the IUCN status for a species, or the Data
// Deficient default.
func ConservationStatus(name string) Conservation {
	if c, ok := conservationTable[name]; ok {
		return c
	}
	return defaultConservation
}

// ConservationLegend lists every status code appearing in the tables, for
// the page legend.
func ConservationLegend() []Conservation {
	return []Conservation{
		{"LC", "#4CAF50", "Least Concern", "Species is widespread and abundant."},
		{"NT", "#FF9800", "Near Threatened", "Close to qualifying for a threatened category."},
		{"VU", "#F44336", "Vulnerable", "High risk of endangerment in the wild."},
		defaultConservation,
	}
}
