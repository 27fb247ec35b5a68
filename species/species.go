// Package species holds the read-only reference tables for the nine
// classifiable species: descriptive text, habitat class, conservation
// status, size data, and geographic distribution. Every lookup falls back
// to a default record for unknown names.
package species

// Info describes one species for the detail card.
type Info struct {
	Characteristics string   `json:"characteristics"`
	Habitat         string   `json:"habitat"`
	FunFacts        []string `json:"fun_facts"`
}

var defaultInfo = Info{
	Characteristics: "This species has adapted to its aquatic environment with specialized features for swimming, feeding, and survival.",
	Habitat:         "This species can be found in specific water conditions that match its evolutionary adaptations.",
	FunFacts: []string{
		"Each fish species plays a unique role in its ecosystem",
		"Fish have been on Earth for over 500 million years",
		"There are more than 34,000 known species of fish",
	},
}

var infoTable = map[string]Info{
	"Black Sea Sprat": {
		Characteristics: "Black Sea Sprats are small, slender schooling fish with silvery flanks and a bluish-green back. They rarely exceed 15 cm and feed on plankton near the surface.",
		Habitat:         "Found in large schools in the Black Sea and adjacent waters, preferring cool coastal waters and moving deeper during warm months.",
		FunFacts: []string{
			"Forms massive schools with thousands of individuals",
			"An important food source for larger predatory fish and seabirds",
			"Spawns in open water, releasing eggs directly into the sea",
		},
	},
	"Gilthead Bream": {
		Characteristics: "Gilthead Breams have an oval, deep body with silvery-gray coloring and a distinctive gold band between the eyes. Strong jaws let them crush mollusc shells.",
		Habitat:         "Common in the Mediterranean on seagrass beds and sandy bottoms, from shallow coastal waters down to about 30 meters; tolerates brackish lagoons.",
		FunFacts: []string{
			"Has a distinctive gold band between its eyes",
			"Mostly hermaphroditic, maturing as male before becoming female",
			"One of the most widely farmed fish in the Mediterranean",
		},
	},
	"Horse Mackerel": {
		Characteristics: "Horse Mackerels are elongated, fast-swimming fish with a line of enlarged scales (scutes) along the lateral line and a deeply forked tail.",
		Habitat:         "Pelagic schooling fish of the Eastern Atlantic and Mediterranean, usually over sandy bottoms between 100 and 200 meters.",
		FunFacts: []string{
			"Can live up to 15 years and grow to 70cm",
			"Juveniles often shelter among the tentacles of jellyfish",
			"Named for a legend that other fish could ride on its back",
		},
	},
	"Red Mullet": {
		Characteristics: "Red Mullets are reddish bottom-dwelling fish with two long chin barbels used to probe sediment for food. They have a steep head profile and forked tail.",
		Habitat:         "Lives over soft bottoms in the Mediterranean and Eastern Atlantic, typically between 10 and 100 meters deep.",
		FunFacts: []string{
			"Uses chin barbels to detect prey in sand",
			"Can rapidly change color intensity when stressed",
			"Was one of the most prized fish of the ancient Mediterranean",
		},
	},
	"Red Sea Bream": {
		Characteristics: "Red Sea Breams have a deep, compressed reddish-pink body with large eyes. Older individuals develop a pronounced forehead bump.",
		Habitat:         "Found over rocky and coral bottoms in the Mediterranean and Eastern Atlantic, usually between 40 and 300 meters.",
		FunFacts: []string{
			"Changes color during breeding season",
			"Can live for several decades in deep water",
			"Juveniles live much shallower than adults",
		},
	},
	"Sea Bass": {
		Characteristics: "Sea bass have elongated bodies with large mouths and small scales. European sea bass are silvery gray with a slight blue-gray tint on their backs. They have two dorsal fins, the first with sharp spines.",
		Habitat:         "Sea bass are primarily coastal fish found in the Atlantic Ocean and Mediterranean Sea. They can thrive in various environments including open waters, estuaries, lagoons, and even venture into rivers during summer.",
		FunFacts: []string{
			"Sea bass have excellent hearing abilities due to their well-developed inner ears",
			"They can change color slightly to blend with their surroundings",
			"Some sea bass species can live up to 25 years",
			"They are known to be intelligent and can learn to avoid fishing gear after being caught and released",
		},
	},
	"Shrimp": {
		Characteristics: "Shrimps are small crustaceans with a semi-transparent, laterally compressed body, long antennae, and fan-shaped tails that propel them backwards in quick bursts.",
		Habitat:         "Various shrimp species inhabit tropical and subtropical waters worldwide, many living among coral reefs or burrowing in soft sediment.",
		FunFacts: []string{
			"Some species can create stunning bubbles",
			"Shrimp swim backwards by flexing their abdomen",
			"Cleaner shrimp remove parasites from much larger fish",
		},
	},
	"Striped Red Mullet": {
		Characteristics: "Striped Red Mullets resemble Red Mullets but carry distinct longitudinal yellow-brown stripes along the flank and a steeper snout.",
		Habitat:         "Prefers rocky and broken ground in the Mediterranean and Eastern Atlantic, shallower than its plain cousin, often under 60 meters.",
		FunFacts: []string{
			"Highly prized in ancient Rome",
			"Wealthy Romans reportedly kept them in ornamental ponds",
			"Forages by stirring sediment with sensitive chin barbels",
		},
	},
	"Trout": {
		Characteristics: "Trout are freshwater fish with streamlined bodies and small scales. They typically have spots on their bodies and can range in color from silver to dark brown. They have a distinctive adipose fin between the dorsal and caudal fins.",
		Habitat:         "Trout thrive in cold, clean freshwater environments like rivers, streams, and lakes. They prefer oxygen-rich waters with temperatures between 10-16°C (50-60°F). Many species require gravel beds for spawning.",
		FunFacts: []string{
			"Trout can see ultraviolet light, which humans cannot perceive",
			"Some trout species can live up to 20 years in the wild",
			"Rainbow trout are capable of surviving in both freshwater and saltwater",
			"Trout have teeth on their tongues to help grip slippery prey",
		},
	},
}

// Lookup returns the detail card info for a species, or the default record.
func Lookup(name string) Info {
	if info, ok := infoTable[name]; ok {
		return info
	}
	return defaultInfo
}

// funFacts holds the one-line facts shown on result cards.
var funFacts = map[string]string{
	"Black Sea Sprat":    "Forms massive schools with thousands of individuals.",
	"Gilthead Bream":     "Has a distinctive gold band between its eyes.",
	"Horse Mackerel":     "Can live up to 15 years and grow to 70cm.",
	"Red Mullet":         "Uses chin barbels to detect prey in sand.",
	"Red Sea Bream":      "Changes color during breeding season.",
	"Sea Bass":           "Has excellent hearing abilities.",
	"Shrimp":             "Some species can create stunning bubbles.",
	"Striped Red Mullet": "Highly prized in ancient Rome.",
	"Trout":              "Can see ultraviolet light.",
}

// FunFact returns a one-line fact for the result card, or an empty string.
func FunFact(name string) string {
	return funFacts[name]
}

// habitatClasses drives the themed page background for the top result.
var habitatClasses = map[string]string{
	"Black Sea Sprat":    "coastal",
	"Red Sea Bream":      "coral_reef",
	"Gilthead Bream":     "coastal",
	"Horse Mackerel":     "coastal",
	"Red Mullet":         "coastal",
	"Sea Bass":           "coastal",
	"Striped Red Mullet": "coastal",
	"Trout":              "freshwater",
	"Shrimp":             "coral_reef",
}

// HabitatClass returns the habitat theme for a species ("coastal",
// "coral_reef", "freshwater"), or "default" when unknown.
func HabitatClass(name string) string {
	if class, ok := habitatClasses[name]; ok {
		return class
	}
	return "default"
}
