package statistical_test

import (
	"math"
	"testing"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	"github.com/metafeat/metafeat/measures/statistical"
)

func testDataset() dataset.Dataset {
	return dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 2, 3, 4, 5, 6}},
			{Name: "y", Kind: dataset.Numeric, Num: []float64{2, 4, 6, 8, 10, 12}},
		},
		Labels: []string{"A", "A", "A", "B", "B", "B"},
	}
}

func TestMean(t *testing.T) {
	got, err := statistical.Mean{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 3.5 || got[1] != 7 {
		t.Fatalf("mean = %v, want [3.5 7]", got)
	}
}

func TestSD(t *testing.T) {
	got, err := statistical.SD{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[0]-1.8708286933869707) > 1e-12 {
		t.Fatalf("sd of 1..6 = %v", got[0])
	}
}

func TestByClassExpansion(t *testing.T) {
	// Two classes and two attributes give four entries, class-major in class
	// first-appearance order.
	got, err := statistical.Mean{}.Execute(testDataset(), measures.Options{ByClass: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 4, 5, 10}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byClass mean = %v, want %v", got, want)
		}
	}
}

func TestCorPerfectlyCorrelated(t *testing.T) {
	got, err := statistical.Cor{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("cor = %v, want [1]", got)
	}
}

func TestCorConstantAttribute(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 2, 3, 4}},
			{Name: "k", Kind: dataset.Numeric, Num: []float64{7, 7, 7, 7}},
		},
		Labels: []string{"A", "A", "B", "B"},
	}
	if _, err := (statistical.Cor{}).Execute(d, measures.Options{}); err == nil {
		t.Fatal("expected error for undefined correlation")
	}
}

func TestNrCorAttr(t *testing.T) {
	got, err := statistical.NrCorAttr{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("nrCorAttr = %v, want [1]", got)
	}
}

func TestNrOutliers(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 2, 2, 3, 3, 3, 2, 2, 1, 100}},
		},
		Labels: []string{"A", "A", "A", "A", "A", "B", "B", "B", "B", "B"},
	}
	got, err := statistical.NrOutliers{}.Execute(d, measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 {
		t.Fatalf("nrOutliers = %v, want [1]", got)
	}
}

func TestSparsity(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 1, 2, 2}},
		},
		Labels: []string{"A", "A", "B", "B"},
	}
	got, err := statistical.Sparsity{}.Execute(d, measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0.5 {
		t.Fatalf("sparsity = %v, want [0.5]", got)
	}
}

func TestNoNumericAttributes(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "c", Kind: dataset.Categorical, Values: []string{"p", "q"}},
		},
		Labels: []string{"A", "B"},
	}
	if _, err := (statistical.Mean{}).Execute(d, measures.Options{}); err == nil {
		t.Fatal("expected error with no numeric attributes")
	}
}
