package server

import (
	"sort"

	"github.com/seapix/fishdex/classifier"
	"github.com/seapix/fishdex/species"
)

// ClassifyResponse is the JSON body returned by the classify endpoint.
type ClassifyResponse struct {
	Predictions []classifier.Prediction `json:"predictions"`
	TopSpecies  species.Bundle          `json:"top_species"`
	Device      string                  `json:"device"`
	ElapsedMS   int64                   `json:"elapsed_ms"`

	// AnnotatedPNG is the downloadable result card, base64 encoded.
	// Empty when composition failed; the rest of the result is still valid.
	AnnotatedPNG string `json:"annotated_png,omitempty"`
}

// sampleImages whitelists the bundled sample pictures by form value.
var sampleImages = map[string]string{
	"sea_bass": "sea_bass.jpg",
	"trout":    "trout.jpg",
	"shrimp":   "shrimp.jpg",
}

// sampleNames lists the sample form values in stable order for the UI.
func sampleNames() []string {
	names := make([]string, 0, len(sampleImages))
	for name := range sampleImages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
