package dataset_test

import (
	"strings"
	"testing"

	"github.com/metafeat/metafeat/dataset"
)

func testDataset() dataset.Dataset {
	return dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "a", Kind: dataset.Numeric, Num: []float64{1, 2, 3, 4}},
			{Name: "b", Kind: dataset.Categorical, Values: []string{"x", "y", "x", "z"}},
		},
		Labels: []string{"pos", "neg", "pos", "neg"},
	}
}

func TestValidate(t *testing.T) {
	d := testDataset()
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}

	d.Labels = []string{"pos", "pos", "pos", "pos"}
	if err := d.Validate(); err == nil {
		t.Fatal("expected single-class dataset to fail validation")
	}

	d = testDataset()
	d.Attributes[0].Num = d.Attributes[0].Num[:2]
	if err := d.Validate(); err == nil {
		t.Fatal("expected arity mismatch to fail validation")
	}
}

func TestClasses(t *testing.T) {
	d := testDataset()
	classes := d.Classes()
	if len(classes) != 2 || classes[0] != "pos" || classes[1] != "neg" {
		t.Fatalf("classes not in first-appearance order: %v", classes)
	}
	y := d.ClassIndexes()
	want := []int{0, 1, 0, 1}
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("class indexes %v, want %v", y, want)
		}
	}
}

func TestEncoded(t *testing.T) {
	d := testDataset()
	e := d.Encoded()
	if e.Attributes[1].Kind != dataset.Numeric {
		t.Fatal("categorical attribute not encoded")
	}
	want := []float64{0, 1, 0, 2}
	for i, v := range e.Attributes[1].Num {
		if v != want[i] {
			t.Fatalf("codes %v, want %v", e.Attributes[1].Num, want)
		}
	}
	// The source dataset must not have been mutated.
	if d.Attributes[1].Kind != dataset.Categorical {
		t.Fatal("Encoded mutated its receiver")
	}
}

func TestViews(t *testing.T) {
	d := testDataset()
	if n := len(d.NumericView(false).Attributes); n != 1 {
		t.Fatalf("numeric view without encoding has %d attributes, want 1", n)
	}
	if n := len(d.NumericView(true).Attributes); n != 2 {
		t.Fatalf("numeric view with encoding has %d attributes, want 2", n)
	}
	if n := len(d.CategoricalView(false).Attributes); n != 1 {
		t.Fatalf("categorical view without discretisation has %d attributes, want 1", n)
	}
	cv := d.CategoricalView(true)
	if n := len(cv.Attributes); n != 2 {
		t.Fatalf("categorical view with discretisation has %d attributes, want 2", n)
	}
	for _, a := range cv.Attributes {
		if a.Kind != dataset.Categorical {
			t.Fatalf("attribute %s not categorical in categorical view", a.Name)
		}
	}
}

func TestDiscretised(t *testing.T) {
	d := dataset.Dataset{
		Attributes: []dataset.Attribute{
			{Name: "a", Kind: dataset.Numeric, Num: []float64{0, 0.4, 0.6, 1}},
		},
		Labels: []string{"p", "n", "p", "n"},
	}
	disc := d.Discretised(2)
	a := disc.Attributes[0]
	if a.Kind != dataset.Categorical {
		t.Fatal("attribute not discretised")
	}
	if a.Values[0] != a.Values[1] || a.Values[2] != a.Values[3] || a.Values[0] == a.Values[2] {
		t.Fatalf("unexpected binning: %v", a.Values)
	}
}

func TestDistinct(t *testing.T) {
	d := testDataset()
	if n := dataset.Distinct(d.Attributes[1]); n != 3 {
		t.Fatalf("distinct = %d, want 3", n)
	}
	if n := dataset.Distinct(d.Attributes[0]); n != 4 {
		t.Fatalf("distinct = %d, want 4", n)
	}
}

func TestFromCSV(t *testing.T) {
	data := `a,b,class
1,x,pos
2,y,neg
3,x,pos
4,z,neg
`
	d, err := dataset.FromCSV(strings.NewReader(data), "class")
	if err != nil {
		t.Fatal(err)
	}
	if d.Rows() != 4 {
		t.Fatalf("rows = %d, want 4", d.Rows())
	}
	if len(d.Attributes) != 2 {
		t.Fatalf("attributes = %d, want 2", len(d.Attributes))
	}
	if d.Attributes[0].Kind != dataset.Numeric {
		t.Fatal("column a should be numeric")
	}
	if d.Attributes[1].Kind != dataset.Categorical {
		t.Fatal("column b should be categorical")
	}

	if _, err := dataset.FromCSV(strings.NewReader(data), "missing"); err == nil {
		t.Fatal("expected error for unknown class column")
	}
}
