package classifier

import "sort"

// Prediction is one ranked classification result.
type Prediction struct {
	Species     string  `json:"species"`
	Label       string  `json:"label"`
	Probability float32 `json:"probability"`
}

// Rank selects the top k entries by descending probability and maps raw
// labels to display names. Exact ties rank the lower index first.
func Rank(probs []float32, labels []string, k int) []Prediction {
	n := len(probs)
	if len(labels) < n {
		n = len(labels)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})

	if k > n {
		k = n
	}
	ranked := make([]Prediction, 0, k)
	for _, i := range idx[:k] {
		ranked = append(ranked, Prediction{
			Species:     DisplayName(labels[i]),
			Label:       labels[i],
			Probability: probs[i],
		})
	}
	return ranked
}
