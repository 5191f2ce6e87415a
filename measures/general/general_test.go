package general_test

import (
	"testing"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	"github.com/metafeat/metafeat/measures/general"
)

func testDataset() dataset.Dataset {
	return dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "x", Kind: dataset.Numeric, Num: []float64{1, 2, 3, 4}},
			{Name: "y", Kind: dataset.Numeric, Num: []float64{0, 1, 0, 1}},
			{Name: "c", Kind: dataset.Categorical, Values: []string{"p", "q", "p", "q"}},
		},
		Labels: []string{"A", "A", "A", "B"},
	}
}

func TestCounts(t *testing.T) {
	d := testDataset()
	cases := []struct {
		m    measures.Measurement
		want float64
	}{
		{general.NrInst{}, 4},
		{general.NrAttr{}, 3},
		{general.NrClass{}, 2},
		{general.NrNum{}, 2},
		{general.NrCat{}, 1},
		{general.NrBin{}, 2},
	}
	for _, c := range cases {
		got, err := c.m.Execute(d, measures.Options{})
		if err != nil {
			t.Fatalf("%s: %v", c.m.Name(), err)
		}
		if len(got) != 1 || got[0] != c.want {
			t.Fatalf("%s = %v, want [%v]", c.m.Name(), got, c.want)
		}
	}
}

func TestRatios(t *testing.T) {
	d := testDataset()
	got, err := general.AttrToInst{}.Execute(d, measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0.75 {
		t.Fatalf("attrToInst = %v, want 0.75", got[0])
	}
	got, err = general.CatToNum{}.Execute(d, measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0.5 {
		t.Fatalf("catToNum = %v, want 0.5", got[0])
	}
}

func TestCatToNumNoNumeric(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "c", Kind: dataset.Categorical, Values: []string{"p", "q"}},
		},
		Labels: []string{"A", "B"},
	}
	if _, err := (general.CatToNum{}).Execute(d, measures.Options{}); err == nil {
		t.Fatal("expected error with no numeric attributes")
	}
}

func TestFreqClass(t *testing.T) {
	got, err := general.FreqClass{}.Execute(testDataset(), measures.Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Ordered by class first appearance: A then B.
	if len(got) != 2 || got[0] != 0.75 || got[1] != 0.25 {
		t.Fatalf("freqClass = %v, want [0.75 0.25]", got)
	}
}
