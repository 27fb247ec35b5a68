package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTopThree(t *testing.T) {
	probs := []float32{0.01, 0.5, 0.02, 0.03, 0.3, 0.04, 0.05, 0.02, 0.03}
	ranked := Rank(probs, DefaultLabels(), 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Gilthead Bream", ranked[0].Species)
	assert.Equal(t, "Red Sea Bream", ranked[1].Species)
	assert.Equal(t, "Shrimp", ranked[2].Species)
	assert.InDelta(t, 0.5, ranked[0].Probability, 1e-6)
}

func TestRankStableOnTies(t *testing.T) {
	probs := []float32{0.5, 0.5, 0.2, 0, 0, 0, 0, 0, 0}
	ranked := Rank(probs, DefaultLabels(), 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Black Sea Sprat", ranked[0].Species, "lower index must win exact ties")
	assert.Equal(t, "Gilthead Bream", ranked[1].Species)
}

func TestRankMapsRawLabels(t *testing.T) {
	labels := []string{
		"fish_sea_food_black_sea_sprat",
		"fish_sea_food_gilt_head_bream",
		"fish_sea_food_hourse_mackerel",
	}
	ranked := Rank([]float32{0.2, 0.5, 0.3}, labels, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Gilthead Bream", ranked[0].Species)
	assert.Equal(t, "fish_sea_food_gilt_head_bream", ranked[0].Label)
}

func TestRankUniformVector(t *testing.T) {
	probs := make([]float32, 9)
	for i := range probs {
		probs[i] = 1.0 / 9.0
	}
	SmoothConfidence(probs) // must not trigger at 1/9

	ranked := Rank(probs, DefaultLabels(), 3)
	require.Len(t, ranked, 3)
	for _, p := range ranked {
		assert.InDelta(t, 0.111, p.Probability, 0.001)
	}
}

func TestRankClampsK(t *testing.T) {
	ranked := Rank([]float32{0.6, 0.4}, []string{"Trout", "Shrimp"}, 5)
	assert.Len(t, ranked, 2)
}
