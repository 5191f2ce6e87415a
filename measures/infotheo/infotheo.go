// Package infotheo provides information-theoretic measures over the
// categorical view of a dataset.
package infotheo

import (
	"errors"
	"math"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
)

func init() {
	measures.Register(measures.InfoTheo, false, ClassEnt{})
	measures.Register(measures.InfoTheo, true, AttrEnt{})
	measures.Register(measures.InfoTheo, true, JointEnt{})
	measures.Register(measures.InfoTheo, true, MutInf{})
	measures.Register(measures.InfoTheo, false, EqNumAttr{})
	measures.Register(measures.InfoTheo, false, NsRatio{})
	measures.Register(measures.InfoTheo, true, AttrConc{})
	measures.Register(measures.InfoTheo, true, ClassConc{})
}

// ClassEnt is the entropy of the class distribution.
type ClassEnt struct{}

// AttrEnt is the entropy of each attribute's value distribution.
type AttrEnt struct{}

// JointEnt is the joint entropy of each attribute with the class.
type JointEnt struct{}

// MutInf is the mutual information of each attribute with the class.
type MutInf struct{}

// EqNumAttr is the number of attributes equivalent to the class entropy,
// class entropy over mean mutual information.
type EqNumAttr struct{}

// NsRatio is the noise-to-signal ratio, the non-informative fraction of the
// mean attribute entropy over the mean mutual information.
type NsRatio struct{}

// AttrConc is the concentration coefficient of every attribute pair.
type AttrConc struct{}

// ClassConc is the concentration coefficient of each attribute with the
// class.
type ClassConc struct{}

func (ClassEnt) Name() string { return "classEnt" }

func (ClassEnt) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return []float64{entropy(d.Labels)}, nil
}

func (AttrEnt) Name() string { return "attrEnt" }

func (AttrEnt) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return eachAttribute(d, func(values []string) (float64, error) {
		return entropy(values), nil
	})
}

func (JointEnt) Name() string { return "jointEnt" }

func (JointEnt) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return eachAttribute(d, func(values []string) (float64, error) {
		return jointEntropy(values, d.Labels), nil
	})
}

func (MutInf) Name() string { return "mutInf" }

func (MutInf) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	classEnt := entropy(d.Labels)
	return eachAttribute(d, func(values []string) (float64, error) {
		return entropy(values) + classEnt - jointEntropy(values, d.Labels), nil
	})
}

func (EqNumAttr) Name() string { return "eqNumAttr" }

func (EqNumAttr) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	mi, err := (MutInf{}).Execute(d, opts)
	if err != nil {
		return nil, err
	}
	m := mean(mi)
	if m == 0 {
		return nil, errors.New("infotheo: no attribute shares information with the class")
	}
	return []float64{entropy(d.Labels) / m}, nil
}

func (NsRatio) Name() string { return "nsRatio" }

func (NsRatio) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	mi, err := (MutInf{}).Execute(d, opts)
	if err != nil {
		return nil, err
	}
	ae, err := (AttrEnt{}).Execute(d, opts)
	if err != nil {
		return nil, err
	}
	m := mean(mi)
	if m == 0 {
		return nil, errors.New("infotheo: no attribute shares information with the class")
	}
	return []float64{(mean(ae) - m) / m}, nil
}

func (AttrConc) Name() string { return "attrConc" }

func (AttrConc) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	if len(d.Attributes) < 2 {
		return nil, errors.New("infotheo: need at least two attributes")
	}
	var out []float64
	for i := 0; i < len(d.Attributes); i++ {
		for j := 0; j < len(d.Attributes); j++ {
			if i == j {
				continue
			}
			c, err := concentration(d.Attributes[i].Values, d.Attributes[j].Values)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (ClassConc) Name() string { return "classConc" }

func (ClassConc) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return eachAttribute(d, func(values []string) (float64, error) {
		return concentration(values, d.Labels)
	})
}

func eachAttribute(d dataset.Dataset, f func(values []string) (float64, error)) ([]float64, error) {
	if len(d.Attributes) == 0 {
		return nil, errors.New("infotheo: no categorical attributes")
	}
	out := make([]float64, len(d.Attributes))
	for i, a := range d.Attributes {
		v, err := f(a.Values)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// entropy is the Shannon entropy, in bits, of the value distribution.
func entropy(values []string) float64 {
	counts := make(map[string]float64)
	for _, v := range values {
		counts[v]++
	}
	n := float64(len(values))
	h := 0.0
	for _, c := range counts {
		p := c / n
		h -= p * math.Log2(p)
	}
	return h
}

func jointEntropy(a, b []string) float64 {
	joint := make([]string, len(a))
	for i := range a {
		joint[i] = a[i] + "\x00" + b[i]
	}
	return entropy(joint)
}

// concentration is the Goodman-Kruskal tau of y given x: the proportional
// reduction in prediction error of y when x is known.
func concentration(x, y []string) (float64, error) {
	n := float64(len(x))
	cross := make(map[string]map[string]float64)
	xCounts := make(map[string]float64)
	yCounts := make(map[string]float64)
	for i := range x {
		if cross[x[i]] == nil {
			cross[x[i]] = make(map[string]float64)
		}
		cross[x[i]][y[i]]++
		xCounts[x[i]]++
		yCounts[y[i]]++
	}

	var conditional float64
	for xv, row := range cross {
		for _, c := range row {
			conditional += c * c / xCounts[xv]
		}
	}
	var marginal float64
	for _, c := range yCounts {
		marginal += c * c / n
	}
	if n == marginal {
		return 0, errors.New("infotheo: concentration undefined for a constant target")
	}
	return (conditional - marginal) / (n - marginal), nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
