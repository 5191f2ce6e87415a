package infotheo_test

import (
	"math"
	"testing"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	"github.com/metafeat/metafeat/measures/infotheo"
)

// testDataset has one attribute identical to the class and one independent
// of it.
func testDataset() dataset.Dataset {
	return dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "same", Kind: dataset.Categorical, Values: []string{"a", "a", "b", "b"}},
			{Name: "noise", Kind: dataset.Categorical, Values: []string{"x", "y", "x", "y"}},
		},
		Labels: []string{"A", "A", "B", "B"},
	}
}

func TestClassEnt(t *testing.T) {
	got, err := infotheo.ClassEnt{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Balanced binary labels hold exactly one bit.
	if math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("classEnt = %v, want 1", got[0])
	}
}

func TestMutInf(t *testing.T) {
	got, err := infotheo.MutInf{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("mutInf of the class copy = %v, want 1", got[0])
	}
	if math.Abs(got[1]) > 1e-12 {
		t.Fatalf("mutInf of noise = %v, want 0", got[1])
	}
}

func TestEqNumAttr(t *testing.T) {
	got, err := infotheo.EqNumAttr{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Mean mutual information is 0.5 bits against 1 bit of class entropy.
	if math.Abs(got[0]-2) > 1e-12 {
		t.Fatalf("eqNumAttr = %v, want 2", got[0])
	}
}

func TestEqNumAttrNoInformation(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "noise", Kind: dataset.Categorical, Values: []string{"x", "y", "x", "y"}},
		},
		Labels: []string{"A", "A", "B", "B"},
	}
	if _, err := (infotheo.EqNumAttr{}).Execute(d, measures.Options{}); err == nil {
		t.Fatal("expected error when no attribute is informative")
	}
}

func TestClassConc(t *testing.T) {
	got, err := infotheo.ClassConc{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[0]-1) > 1e-12 {
		t.Fatalf("classConc of the class copy = %v, want 1", got[0])
	}
	if math.Abs(got[1]) > 1e-12 {
		t.Fatalf("classConc of noise = %v, want 0", got[1])
	}
}

func TestAttrConcPairCount(t *testing.T) {
	got, err := infotheo.AttrConc{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Ordered pairs of two attributes.
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestAttrConcNeedsTwoAttributes(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "only", Kind: dataset.Categorical, Values: []string{"a", "b"}},
		},
		Labels: []string{"A", "B"},
	}
	if _, err := (infotheo.AttrConc{}).Execute(d, measures.Options{}); err == nil {
		t.Fatal("expected error with a single attribute")
	}
}
