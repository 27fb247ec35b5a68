package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"fish_sea_food_black_sea_sprat", "Black Sea Sprat"},
		{"fish_sea_food_gilt_head_bream", "Gilthead Bream"},
		{"gilt_head_bream", "Gilthead Bream"},
		{"fish_sea_food_hourse_mackerel", "Horse Mackerel"},
		{"hourse_mackerel", "Horse Mackerel"},
		{"horse mackerel", "Horse Mackerel"},
		{"SEA BASS", "Sea Bass"},
		{"shrimp", "Shrimp"},
		{"  trout  ", "Trout"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayName(tc.raw), "raw label %q", tc.raw)
	}
}

func TestDisplayNameIdempotent(t *testing.T) {
	for _, name := range DefaultLabels() {
		once := DisplayName(name)
		twice := DisplayName(once)
		assert.Equal(t, once, twice, "mapping %q twice changed the result", name)
		assert.Equal(t, name, once, "canonical name %q did not map to itself", name)
	}
}

func TestDisplayNameUnknownPassthrough(t *testing.T) {
	assert.Equal(t, "anglerfish", DisplayName("anglerfish"))
	assert.Equal(t, "", DisplayName(""))
}

func TestDefaultLabelsCopy(t *testing.T) {
	labels := DefaultLabels()
	assert.Len(t, labels, 9)
	labels[0] = "mutated"
	assert.Equal(t, "Black Sea Sprat", DefaultLabels()[0])
}
