package landmarking_test

import (
	"errors"
	"testing"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	"github.com/metafeat/metafeat/measures/landmarking"
)

// testDataset is separable on its first attribute with ten rows per class.
func testDataset() dataset.Dataset {
	n := 20
	x := make([]float64, n)
	noise := make([]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		noise[i] = float64(i % 3)
		if i < n/2 {
			labels[i] = "A"
		} else {
			labels[i] = "B"
		}
	}
	return dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: x},
			{Name: "noise", Kind: dataset.Numeric, Num: noise},
		},
		Labels: labels,
	}
}

func TestLandmarkersScoreWithinFolds(t *testing.T) {
	d := testDataset()
	opts := measures.Options{Folds: 5, Score: "accuracy"}
	landmarkers := []measures.Measurement{
		landmarking.NaiveBayes{},
		landmarking.OneNN{},
		landmarking.EliteNN{},
		landmarking.LinearDiscr{},
		landmarking.BestNode{},
		landmarking.RandomNode{},
		landmarking.WorstNode{},
	}
	for _, m := range landmarkers {
		scores, err := m.Execute(d, opts)
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		if len(scores) == 0 || len(scores) > opts.Folds {
			t.Fatalf("%s returned %d scores for %d folds", m.Name(), len(scores), opts.Folds)
		}
		for _, s := range scores {
			if s < 0 || s > 1 {
				t.Fatalf("%s accuracy %f out of range", m.Name(), s)
			}
		}
	}
}

func TestBestNodeSeparable(t *testing.T) {
	// A single split separates the classes, so the best stump is perfect.
	scores, err := landmarking.BestNode{}.Execute(testDataset(), measures.Options{Folds: 5, Score: "accuracy"})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range scores {
		if s != 1 {
			t.Fatalf("bestNode scores = %v, want all 1", scores)
		}
	}
}

func TestRandomNodeSeeded(t *testing.T) {
	d := testDataset()
	opts := measures.Options{Folds: 5, Score: "accuracy", Seed: 42}
	a, err := landmarking.RandomNode{}.Execute(d, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := landmarking.RandomNode{}.Execute(d, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("seeded runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs differ: %v vs %v", a, b)
		}
	}
}

func TestKappaScore(t *testing.T) {
	scores, err := landmarking.OneNN{}.Execute(testDataset(), measures.Options{Folds: 5, Score: "kappa"})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range scores {
		if s < -1 || s > 1 {
			t.Fatalf("kappa %f out of range", s)
		}
	}
}

func TestUnknownScore(t *testing.T) {
	if _, err := (landmarking.OneNN{}).Execute(testDataset(), measures.Options{Folds: 5, Score: "f1"}); err == nil {
		t.Fatal("expected error for unknown score")
	}
}

func TestInsufficientData(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 2, 3, 4}},
		},
		Labels: []string{"A", "A", "A", "B"},
	}
	_, err := landmarking.NaiveBayes{}.Execute(d, measures.Options{Folds: 5, Score: "accuracy"})
	if !errors.Is(err, measures.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
