package classifier

import "strings"

// displayNames maps every raw label spelling the bundled model can emit to
// its canonical display name. Keys are normalized (lowercase, underscores).
var displayNames = map[string]string{
	"fish_sea_food_black_sea_sprat":    "Black Sea Sprat",
	"black_sea_sprat":                  "Black Sea Sprat",
	"fish_sea_food_gilt_head_bream":    "Gilthead Bream",
	"gilt_head_bream":                  "Gilthead Bream",
	"gilthead_bream":                   "Gilthead Bream",
	"fish_sea_food_hourse_mackerel":    "Horse Mackerel",
	"hourse_mackerel":                  "Horse Mackerel",
	"horse_mackerel":                   "Horse Mackerel",
	"fish_sea_food_red_mullet":         "Red Mullet",
	"red_mullet":                       "Red Mullet",
	"fish_sea_food_red_sea_bream":      "Red Sea Bream",
	"red_sea_bream":                    "Red Sea Bream",
	"fish_sea_food_sea_bass":           "Sea Bass",
	"sea_bass":                         "Sea Bass",
	"fish_sea_food_shrimp":             "Shrimp",
	"shrimp":                           "Shrimp",
	"fish_sea_food_striped_red_mullet": "Striped Red Mullet",
	"striped_red_mullet":               "Striped Red Mullet",
	"fish_sea_food_trout":              "Trout",
	"trout":                            "Trout",
}

// DisplayName maps a raw model label to its canonical display name.
// Unknown labels pass through unchanged. Idempotent: canonical names map
// to themselves.
func DisplayName(raw string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	if name, ok := displayNames[key]; ok {
		return name
	}
	return raw
}

// DefaultLabels returns the label list used when a model file carries no
// class names of its own. Order matches the bundled model's output indices.
func DefaultLabels() []string {
	return []string{
		"Black Sea Sprat",
		"Gilthead Bream",
		"Horse Mackerel",
		"Red Mullet",
		"Red Sea Bream",
		"Sea Bass",
		"Shrimp",
		"Striped Red Mullet",
		"Trout",
	}
}
