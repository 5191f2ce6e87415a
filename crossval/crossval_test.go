package crossval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/metafeat/metafeat/crossval"
)

func TestStratifiedFoldsExact(t *testing.T) {
	// 50 A rows then 50 B rows; 5 folds must each hold exactly 10 of each.
	labels := make([]string, 100)
	for i := 0; i < 50; i++ {
		labels[i] = "A"
	}
	for i := 50; i < 100; i++ {
		labels[i] = "B"
	}
	assign, err := crossval.StratifiedFolds(labels, 5)
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int]map[string]int)
	for i, f := range assign {
		if counts[f] == nil {
			counts[f] = make(map[string]int)
		}
		counts[f][labels[i]]++
	}
	if len(counts) != 5 {
		t.Fatalf("expected 5 folds, got %d", len(counts))
	}
	for f, c := range counts {
		if c["A"] != 10 || c["B"] != 10 {
			t.Fatalf("fold %d has %d A and %d B rows, want 10 each", f, c["A"], c["B"])
		}
	}
}

func TestStratifiedFoldsInsufficientData(t *testing.T) {
	labels := []string{"A", "A", "A", "B", "B", "B", "B", "B"}
	_, err := crossval.StratifiedFolds(labels, 5)
	if !errors.Is(err, crossval.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := crossval.StratifiedFolds(labels, 1); err == nil {
		t.Fatal("expected error for k < 2")
	}
}

// constantLearner always predicts the class it saw most during training.
type constantLearner struct {
	class int
}

func (l *constantLearner) Fit(X [][]float64, y []int) error {
	counts := make(map[int]int)
	for _, v := range y {
		counts[v]++
	}
	best := -1
	for c, n := range counts {
		if best == -1 || n > counts[best] {
			best = c
		}
	}
	l.class = best
	return nil
}

func (l *constantLearner) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i := range out {
		out[i] = l.class
	}
	return out
}

func TestEvaluate(t *testing.T) {
	// Balanced two-class data; the majority-vote learner scores about 0.5.
	n := 20
	X := make([][]float64, n)
	y := make([]int, n)
	labels := make([]string, n)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = i % 2
		labels[i] = []string{"A", "B"}[i%2]
	}
	assign, err := crossval.StratifiedFolds(labels, 5)
	if err != nil {
		t.Fatal(err)
	}
	scores := crossval.Evaluate(X, y, assign, 5, func() crossval.Learner { return &constantLearner{} }, crossval.Accuracy)
	if len(scores) > 5 {
		t.Fatalf("got %d scores for 5 folds", len(scores))
	}
	if len(scores) == 0 {
		t.Fatal("all folds dropped")
	}
	for _, s := range scores {
		if s < 0 || s > 1 {
			t.Fatalf("accuracy %f out of range", s)
		}
	}
}

func TestAccuracy(t *testing.T) {
	truth := []int{0, 0, 1, 1}
	pred := []int{0, 1, 1, 1}
	if a := crossval.Accuracy(truth, pred); a != 0.75 {
		t.Fatalf("accuracy = %f, want 0.75", a)
	}
}

func TestKappa(t *testing.T) {
	// Perfect agreement gives kappa 1.
	truth := []int{0, 1, 0, 1}
	if k := crossval.Kappa(truth, truth); k != 1 {
		t.Fatalf("kappa on perfect agreement = %f, want 1", k)
	}
	// Constant prediction on balanced labels gives kappa 0.
	pred := []int{0, 0, 0, 0}
	if k := crossval.Kappa(truth, pred); math.Abs(k) > 1e-12 {
		t.Fatalf("kappa on constant prediction = %f, want 0", k)
	}
}
