// Package landmarking estimates dataset characteristics from the held-out
// performance of simple, fast learners.
package landmarking

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// gaussianNB is a naive Bayes classifier with per-class Gaussian attribute
// likelihoods.
type gaussianNB struct {
	classes  int
	priors   []float64
	means    [][]float64
	variance [][]float64
}

func newGaussianNB(classes int) *gaussianNB {
	return &gaussianNB{classes: classes}
}

func (g *gaussianNB) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("landmarking: empty training set")
	}
	attrs := len(X[0])
	g.priors = make([]float64, g.classes)
	g.means = alloc(g.classes, attrs)
	g.variance = alloc(g.classes, attrs)
	counts := make([]float64, g.classes)

	for i, row := range X {
		counts[y[i]]++
		for j, v := range row {
			g.means[y[i]][j] += v
		}
	}
	for c := 0; c < g.classes; c++ {
		g.priors[c] = counts[c] / float64(len(X))
		for j := range g.means[c] {
			if counts[c] > 0 {
				g.means[c][j] /= counts[c]
			}
		}
	}
	for i, row := range X {
		for j, v := range row {
			dev := v - g.means[y[i]][j]
			g.variance[y[i]][j] += dev * dev
		}
	}
	for c := 0; c < g.classes; c++ {
		for j := range g.variance[c] {
			if counts[c] > 1 {
				g.variance[c][j] /= counts[c] - 1
			}
			// Variance floor keeps constant attributes from zeroing the density.
			if g.variance[c][j] < 1e-9 {
				g.variance[c][j] = 1e-9
			}
		}
	}
	return nil
}

func (g *gaussianNB) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		best, bestScore := 0, math.Inf(-1)
		for c := 0; c < g.classes; c++ {
			if g.priors[c] == 0 {
				continue
			}
			score := math.Log(g.priors[c])
			for j, v := range row {
				dev := v - g.means[c][j]
				score += -0.5*math.Log(2*math.Pi*g.variance[c][j]) - dev*dev/(2*g.variance[c][j])
			}
			if score > bestScore {
				best, bestScore = c, score
			}
		}
		out[i] = best
	}
	return out
}

// oneNN is a 1-nearest-neighbour classifier over Euclidean distance,
// optionally restricted to a subset of attributes.
type oneNN struct {
	attrs []int
	X     [][]float64
	y     []int
}

func newOneNN(attrs []int) *oneNN {
	return &oneNN{attrs: attrs}
}

func (n *oneNN) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("landmarking: empty training set")
	}
	n.X = X
	n.y = y
	return nil
}

func (n *oneNN) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		best, bestDist := 0, math.Inf(1)
		for j, train := range n.X {
			d := n.distance(row, train)
			if d < bestDist {
				best, bestDist = n.y[j], d
			}
		}
		out[i] = best
	}
	return out
}

// distance is the squared Euclidean distance over the selected attributes.
func (n *oneNN) distance(a, b []float64) float64 {
	sum := 0.0
	if n.attrs == nil {
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return sum
	}
	for _, i := range n.attrs {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// stump is a single-split decision tree over one attribute.
type stump struct {
	pick       attrSelector
	attr       int
	threshold  float64
	leftClass  int
	rightClass int
	classes    int
}

// attrSelector picks the attribute a stump splits on.
type attrSelector func(X [][]float64, y []int, classes int) int

func newStump(classes int, s attrSelector) *stump {
	return &stump{classes: classes, pick: s}
}

func (s *stump) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("landmarking: empty training set")
	}
	s.attr = s.pick(X, y, s.classes)
	if s.attr < 0 || s.attr >= len(X[0]) {
		return errors.New("landmarking: no attribute to split on")
	}

	_, s.threshold = attrGain(X, y, s.attr, s.classes)

	leftCounts := make([]int, s.classes)
	rightCounts := make([]int, s.classes)
	for i, row := range X {
		if row[s.attr] <= s.threshold {
			leftCounts[y[i]]++
		} else {
			rightCounts[y[i]]++
		}
	}
	s.leftClass = argmax(leftCounts)
	s.rightClass = argmax(rightCounts)
	return nil
}

func (s *stump) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		if row[s.attr] <= s.threshold {
			out[i] = s.leftClass
		} else {
			out[i] = s.rightClass
		}
	}
	return out
}

// bestAttr selects the attribute with the largest single-split gini gain.
func bestAttr(X [][]float64, y []int, classes int) int {
	best, bestGain := 0, math.Inf(-1)
	for attr := range X[0] {
		gain, _ := attrGain(X, y, attr, classes)
		if gain > bestGain {
			best, bestGain = attr, gain
		}
	}
	return best
}

// worstAttr selects the attribute with the smallest single-split gini gain.
func worstAttr(X [][]float64, y []int, classes int) int {
	worst, worstGain := 0, math.Inf(1)
	for attr := range X[0] {
		gain, _ := attrGain(X, y, attr, classes)
		if gain < worstGain {
			worst, worstGain = attr, gain
		}
	}
	return worst
}

// randomAttr selects a seeded random attribute.
func randomAttr(seed int64) attrSelector {
	return func(X [][]float64, y []int, _ int) int {
		return rand.New(rand.NewSource(seed)).Intn(len(X[0]))
	}
}

// attrGain finds the best midpoint threshold of one attribute and returns
// its gini gain and the threshold.
func attrGain(X [][]float64, y []int, attr, classes int) (float64, float64) {
	counts := make([]int, classes)
	for _, c := range y {
		counts[c]++
	}
	parent := gini(counts)

	// Candidate thresholds are midpoints between distinct sorted values.
	values := make([]float64, len(X))
	for i, row := range X {
		values[i] = row[attr]
	}
	order := argsort(values)

	leftCounts := make([]int, classes)
	rightCounts := append([]int(nil), counts...)
	bestGain, bestThreshold := 0.0, values[order[0]]
	for s := 1; s < len(order); s++ {
		prev, cur := order[s-1], order[s]
		leftCounts[y[prev]]++
		rightCounts[y[prev]]--
		if values[prev] == values[cur] {
			continue
		}
		nLeft, nRight := float64(s), float64(len(order)-s)
		weighted := (nLeft*giniOf(leftCounts, nLeft) + nRight*giniOf(rightCounts, nRight)) / float64(len(order))
		if gain := parent - weighted; gain > bestGain {
			bestGain = gain
			bestThreshold = (values[prev] + values[cur]) / 2
		}
	}
	return bestGain, bestThreshold
}

// linearDiscriminant classifies with Fisher's linear discriminant using a
// pooled covariance estimate.
type linearDiscriminant struct {
	classes int
	priors  []float64
	means   [][]float64
	// weights and biases of the per-class discriminant functions.
	w [][]float64
	b []float64
}

func newLinearDiscriminant(classes int) *linearDiscriminant {
	return &linearDiscriminant{classes: classes}
}

func (l *linearDiscriminant) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("landmarking: empty training set")
	}
	attrs := len(X[0])
	counts := make([]float64, l.classes)
	l.priors = make([]float64, l.classes)
	l.means = alloc(l.classes, attrs)
	for i, row := range X {
		counts[y[i]]++
		for j, v := range row {
			l.means[y[i]][j] += v
		}
	}
	for c := 0; c < l.classes; c++ {
		for j := range l.means[c] {
			if counts[c] > 0 {
				l.means[c][j] /= counts[c]
			}
		}
		l.priors[c] = counts[c] / float64(len(X))
	}

	// Pooled within-class covariance, ridged slightly to stay invertible.
	pooled := mat.NewSymDense(attrs, nil)
	for i, row := range X {
		for a := 0; a < attrs; a++ {
			for b := a; b < attrs; b++ {
				dev := (row[a] - l.means[y[i]][a]) * (row[b] - l.means[y[i]][b])
				pooled.SetSym(a, b, pooled.At(a, b)+dev)
			}
		}
	}
	denom := float64(len(X) - l.classes)
	if denom < 1 {
		denom = 1
	}
	for a := 0; a < attrs; a++ {
		for b := a; b < attrs; b++ {
			pooled.SetSym(a, b, pooled.At(a, b)/denom)
		}
		pooled.SetSym(a, a, pooled.At(a, a)+1e-6)
	}

	var chol mat.Cholesky
	if !chol.Factorize(pooled) {
		return errors.New("landmarking: singular pooled covariance")
	}

	l.w = alloc(l.classes, attrs)
	l.b = make([]float64, l.classes)
	for c := 0; c < l.classes; c++ {
		mu := mat.NewVecDense(attrs, append([]float64(nil), l.means[c]...))
		var w mat.VecDense
		if err := chol.SolveVecTo(&w, mu); err != nil {
			return err
		}
		for j := 0; j < attrs; j++ {
			l.w[c][j] = w.AtVec(j)
		}
		l.b[c] = -0.5*mat.Dot(mu, &w) + math.Log(math.Max(l.priors[c], 1e-12))
	}
	return nil
}

func (l *linearDiscriminant) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		best, bestScore := 0, math.Inf(-1)
		for c := 0; c < l.classes; c++ {
			if l.priors[c] == 0 {
				continue
			}
			score := l.b[c]
			for j, v := range row {
				score += l.w[c][j] * v
			}
			if score > bestScore {
				best, bestScore = c, score
			}
		}
		out[i] = best
	}
	return out
}

func alloc(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func argmax(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}

func argsort(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	// Stable so equal values keep row order and fitting stays deterministic.
	sort.SliceStable(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	return order
}

func gini(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	return giniOf(counts, n)
}

func giniOf(counts []int, n float64) float64 {
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}
