package crossval

// Metric scores predictions against the truth.
type Metric func(truth, predicted []int) float64

// Accuracy is the fraction of correct predictions.
func Accuracy(truth, predicted []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	n := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			n++
		}
	}
	return float64(n) / float64(len(truth))
}

// Kappa is Cohen's kappa: agreement corrected for the agreement expected
// from the marginal label distributions.
func Kappa(truth, predicted []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	n := float64(len(truth))
	observed := Accuracy(truth, predicted)

	truthCounts := make(map[int]float64)
	predCounts := make(map[int]float64)
	for i := range truth {
		truthCounts[truth[i]]++
		predCounts[predicted[i]]++
	}
	expected := 0.0
	for c, tc := range truthCounts {
		expected += (tc / n) * (predCounts[c] / n)
	}
	if expected == 1 {
		return 0
	}
	return (observed - expected) / (1 - expected)
}
