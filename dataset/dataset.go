// Package dataset provides the labelled tabular dataset type that measures are computed over.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/xtgo/set"
)

// Kind is the type of the values an attribute holds.
type Kind int

const (
	// Numeric attributes hold real values.
	Numeric Kind = iota
	// Categorical attributes hold values from a finite unordered set.
	Categorical
)

// Attribute is a single named column of a dataset. Exactly one of Numeric or
// Values is populated, according to Kind.
type Attribute struct {
	Name   string
	Kind   Kind
	Num    []float64
	Values []string
}

// Len is the number of rows the attribute holds.
func (a Attribute) Len() int {
	if a.Kind == Numeric {
		return len(a.Num)
	}
	return len(a.Values)
}

// Dataset is an immutable labelled tabular dataset. Transformations return
// derived copies and never mutate the receiver.
type Dataset struct {
	Attributes []Attribute
	Labels     []string
}

// Rows is the number of instances in the dataset.
func (d Dataset) Rows() int {
	return len(d.Labels)
}

// Validate checks the structural invariants of the dataset: every attribute
// has the same arity as the labels, and at least two distinct classes exist.
func (d Dataset) Validate() error {
	if len(d.Labels) == 0 {
		return errors.New("dataset: no instances")
	}
	for _, a := range d.Attributes {
		if a.Len() != len(d.Labels) {
			return fmt.Errorf("dataset: attribute %s has %d values for %d labels", a.Name, a.Len(), len(d.Labels))
		}
	}
	if len(d.Classes()) < 2 {
		return errors.New("dataset: fewer than two classes")
	}
	return nil
}

// Classes returns the distinct class labels in order of first appearance.
func (d Dataset) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, l := range d.Labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	return classes
}

// ClassIndexes returns, for each row, the index of its label in Classes().
func (d Dataset) ClassIndexes() []int {
	idx := make(map[string]int)
	for i, c := range d.Classes() {
		idx[c] = i
	}
	y := make([]int, len(d.Labels))
	for i, l := range d.Labels {
		y[i] = idx[l]
	}
	return y
}

// Distinct counts the distinct values an attribute holds.
func Distinct(a Attribute) int {
	if a.Kind == Categorical {
		vs := append([]string(nil), a.Values...)
		sort.Strings(vs)
		return set.Uniq(sort.StringSlice(vs))
	}
	vs := append([]float64(nil), a.Num...)
	sort.Float64s(vs)
	return set.Uniq(sort.Float64Slice(vs))
}

// Encoded returns a derived copy in which every categorical attribute is
// replaced by a numeric attribute of integer codes, assigned in order of
// first appearance.
func (d Dataset) Encoded() Dataset {
	attrs := make([]Attribute, len(d.Attributes))
	for i, a := range d.Attributes {
		if a.Kind == Numeric {
			attrs[i] = a
			continue
		}
		codes := make(map[string]float64)
		num := make([]float64, len(a.Values))
		for j, v := range a.Values {
			c, ok := codes[v]
			if !ok {
				c = float64(len(codes))
				codes[v] = c
			}
			num[j] = c
		}
		attrs[i] = Attribute{Name: a.Name, Kind: Numeric, Num: num}
	}
	return Dataset{Attributes: attrs, Labels: d.Labels}
}

// NumericView returns a derived copy containing only numeric attributes.
// When encode is true, categorical attributes are first encoded to integer
// codes and retained; otherwise they are dropped.
func (d Dataset) NumericView(encode bool) Dataset {
	if encode {
		return d.Encoded()
	}
	var attrs []Attribute
	for _, a := range d.Attributes {
		if a.Kind == Numeric {
			attrs = append(attrs, a)
		}
	}
	return Dataset{Attributes: attrs, Labels: d.Labels}
}

// CategoricalView returns a derived copy containing only categorical
// attributes. When discretise is true, numeric attributes are binned with
// Discretised and retained; otherwise they are dropped.
func (d Dataset) CategoricalView(discretise bool) Dataset {
	var attrs []Attribute
	for _, a := range d.Attributes {
		switch {
		case a.Kind == Categorical:
			attrs = append(attrs, a)
		case discretise:
			attrs = append(attrs, discretiseAttribute(a, 0))
		}
	}
	return Dataset{Attributes: attrs, Labels: d.Labels}
}

// Discretised returns a derived copy in which every numeric attribute is
// binned into a categorical attribute of equal-width intervals. A bins value
// of zero or less selects Sturges' rule.
func (d Dataset) Discretised(bins int) Dataset {
	attrs := make([]Attribute, len(d.Attributes))
	for i, a := range d.Attributes {
		if a.Kind == Categorical {
			attrs[i] = a
			continue
		}
		attrs[i] = discretiseAttribute(a, bins)
	}
	return Dataset{Attributes: attrs, Labels: d.Labels}
}

func discretiseAttribute(a Attribute, bins int) Attribute {
	if bins <= 0 {
		bins = sturges(len(a.Num))
	}
	lo, hi := a.Num[0], a.Num[0]
	for _, v := range a.Num {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	values := make([]string, len(a.Num))
	for j, v := range a.Num {
		b := 0
		if width > 0 {
			b = int((v - lo) / width)
			if b >= bins {
				b = bins - 1
			}
		}
		values[j] = fmt.Sprintf("b%d", b)
	}
	return Attribute{Name: a.Name, Kind: Categorical, Values: values}
}

func sturges(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Matrix returns the dataset as rows of numeric values. Categorical
// attributes must have been encoded first.
func (d Dataset) Matrix() ([][]float64, error) {
	X := make([][]float64, d.Rows())
	for i := range X {
		X[i] = make([]float64, len(d.Attributes))
	}
	for j, a := range d.Attributes {
		if a.Kind != Numeric {
			return nil, fmt.Errorf("dataset: attribute %s is not numeric", a.Name)
		}
		for i, v := range a.Num {
			X[i][j] = v
		}
	}
	return X, nil
}

// Columns returns the numeric attributes as columns.
func (d Dataset) Columns() [][]float64 {
	var cols [][]float64
	for _, a := range d.Attributes {
		if a.Kind == Numeric {
			cols = append(cols, a.Num)
		}
	}
	return cols
}
