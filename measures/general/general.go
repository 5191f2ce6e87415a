// Package general provides simple structural measures of a dataset.
package general

import (
	"errors"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
)

func init() {
	measures.Register(measures.General, false, NrInst{})
	measures.Register(measures.General, false, NrAttr{})
	measures.Register(measures.General, false, NrClass{})
	measures.Register(measures.General, false, NrNum{})
	measures.Register(measures.General, false, NrCat{})
	measures.Register(measures.General, false, NrBin{})
	measures.Register(measures.General, false, AttrToInst{})
	measures.Register(measures.General, false, InstToAttr{})
	measures.Register(measures.General, false, CatToNum{})
	measures.Register(measures.General, true, FreqClass{})
}

// NrInst counts the instances in the dataset.
type NrInst struct{}

// NrAttr counts the attributes in the dataset.
type NrAttr struct{}

// NrClass counts the distinct classes.
type NrClass struct{}

// NrNum counts the numeric attributes.
type NrNum struct{}

// NrCat counts the categorical attributes.
type NrCat struct{}

// NrBin counts the attributes holding exactly two distinct values.
type NrBin struct{}

// AttrToInst is the ratio of attributes to instances.
type AttrToInst struct{}

// InstToAttr is the ratio of instances to attributes.
type InstToAttr struct{}

// CatToNum is the ratio of categorical to numeric attributes.
type CatToNum struct{}

// FreqClass is the proportion of instances in each class, ordered by class
// first appearance.
type FreqClass struct{}

func (NrInst) Name() string { return "nrInst" }

func (NrInst) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(d.Rows())}, nil
}

func (NrAttr) Name() string { return "nrAttr" }

func (NrAttr) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(len(d.Attributes))}, nil
}

func (NrClass) Name() string { return "nrClass" }

func (NrClass) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(len(d.Classes()))}, nil
}

func (NrNum) Name() string { return "nrNum" }

func (NrNum) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(countKind(d, dataset.Numeric))}, nil
}

func (NrCat) Name() string { return "nrCat" }

func (NrCat) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(countKind(d, dataset.Categorical))}, nil
}

func (NrBin) Name() string { return "nrBin" }

func (NrBin) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	n := 0
	for _, a := range d.Attributes {
		if dataset.Distinct(a) == 2 {
			n++
		}
	}
	return []float64{float64(n)}, nil
}

func (AttrToInst) Name() string { return "attrToInst" }

func (AttrToInst) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{float64(len(d.Attributes)) / float64(d.Rows())}, nil
}

func (InstToAttr) Name() string { return "instToAttr" }

func (InstToAttr) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	if len(d.Attributes) == 0 {
		return nil, errors.New("general: no attributes")
	}
	return []float64{float64(d.Rows()) / float64(len(d.Attributes))}, nil
}

func (CatToNum) Name() string { return "catToNum" }

func (CatToNum) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	num := countKind(d, dataset.Numeric)
	if num == 0 {
		return nil, errors.New("general: no numeric attributes")
	}
	return []float64{float64(countKind(d, dataset.Categorical)) / float64(num)}, nil
}

func (FreqClass) Name() string { return "freqClass" }

func (FreqClass) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	counts := make(map[string]int)
	for _, l := range d.Labels {
		counts[l]++
	}
	classes := d.Classes()
	freq := make([]float64, len(classes))
	for i, c := range classes {
		freq[i] = float64(counts[c]) / float64(d.Rows())
	}
	return freq, nil
}

func countKind(d dataset.Dataset, k dataset.Kind) int {
	n := 0
	for _, a := range d.Attributes {
		if a.Kind == k {
			n++
		}
	}
	return n
}
