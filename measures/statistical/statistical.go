// Package statistical provides distribution measures over the numeric view
// of a dataset.
package statistical

import (
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
)

func init() {
	measures.Register(measures.Statistical, true, Mean{})
	measures.Register(measures.Statistical, true, SD{})
	measures.Register(measures.Statistical, true, Var{})
	measures.Register(measures.Statistical, true, Min{})
	measures.Register(measures.Statistical, true, Max{})
	measures.Register(measures.Statistical, true, Median{})
	measures.Register(measures.Statistical, true, Range{})
	measures.Register(measures.Statistical, true, IQRange{})
	measures.Register(measures.Statistical, true, MAD{})
	measures.Register(measures.Statistical, true, Skewness{})
	measures.Register(measures.Statistical, true, Kurtosis{})
	measures.Register(measures.Statistical, true, GMean{})
	measures.Register(measures.Statistical, true, HMean{})
	measures.Register(measures.Statistical, true, TMean{})
	measures.Register(measures.Statistical, true, Sparsity{})
	measures.Register(measures.Statistical, true, NrOutliers{})
	measures.Register(measures.Statistical, true, Cor{})
	measures.Register(measures.Statistical, true, Cov{})
	measures.Register(measures.Statistical, false, NrCorAttr{})
}

// Mean is the arithmetic mean of each attribute.
type Mean struct{}

// SD is the sample standard deviation of each attribute.
type SD struct{}

// Var is the sample variance of each attribute.
type Var struct{}

// Min is the smallest value of each attribute.
type Min struct{}

// Max is the largest value of each attribute.
type Max struct{}

// Median is the median of each attribute.
type Median struct{}

// Range is the value range of each attribute.
type Range struct{}

// IQRange is the interquartile range of each attribute.
type IQRange struct{}

// MAD is the median absolute deviation of each attribute.
type MAD struct{}

// Skewness is the sample skewness of each attribute.
type Skewness struct{}

// Kurtosis is the sample excess kurtosis of each attribute.
type Kurtosis struct{}

// GMean is the geometric mean of each attribute.
type GMean struct{}

// HMean is the harmonic mean of each attribute.
type HMean struct{}

// TMean is the 20% trimmed mean of each attribute.
type TMean struct{}

// Sparsity is, per attribute, one minus the ratio of distinct values to
// instances.
type Sparsity struct{}

// NrOutliers counts, per attribute, the values outside the 1.5 IQR whiskers.
type NrOutliers struct{}

// Cor is the absolute Pearson correlation of every attribute pair.
type Cor struct{}

// Cov is the covariance of every attribute pair.
type Cov struct{}

// NrCorAttr is the fraction of attribute pairs with absolute correlation of
// at least one half.
type NrCorAttr struct{}

func (Mean) Name() string { return "mean" }

func (Mean) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stat.Mean(col, nil), nil
	})
}

func (SD) Name() string { return "sd" }

func (SD) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stat.StdDev(col, nil), nil
	})
}

func (Var) Name() string { return "var" }

func (Var) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stat.Variance(col, nil), nil
	})
}

func (Min) Name() string { return "min" }

func (Min) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.Min(col)
	})
}

func (Max) Name() string { return "max" }

func (Max) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.Max(col)
	})
}

func (Median) Name() string { return "median" }

func (Median) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.Median(col)
	})
}

func (Range) Name() string { return "range" }

func (Range) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		lo, err := stats.Min(col)
		if err != nil {
			return 0, err
		}
		hi, err := stats.Max(col)
		if err != nil {
			return 0, err
		}
		return hi - lo, nil
	})
}

func (IQRange) Name() string { return "iqRange" }

func (IQRange) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.InterQuartileRange(col)
	})
}

func (MAD) Name() string { return "mad" }

func (MAD) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.MedianAbsoluteDeviation(col)
	})
}

func (Skewness) Name() string { return "skewness" }

func (Skewness) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stat.Skew(col, nil), nil
	})
}

func (Kurtosis) Name() string { return "kurtosis" }

func (Kurtosis) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stat.ExKurtosis(col, nil), nil
	})
}

func (GMean) Name() string { return "gMean" }

func (GMean) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.GeometricMean(col)
	})
}

func (HMean) Name() string { return "hMean" }

func (HMean) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		return stats.HarmonicMean(col)
	})
}

func (TMean) Name() string { return "tMean" }

func (TMean) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		trim := len(col) / 5
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		sorted = sorted[trim : len(sorted)-trim]
		return stat.Mean(sorted, nil), nil
	})
}

func (Sparsity) Name() string { return "sparsity" }

func (Sparsity) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		seen := make(map[float64]bool)
		for _, v := range col {
			seen[v] = true
		}
		return 1 - float64(len(seen))/float64(len(col)), nil
	})
}

func (NrOutliers) Name() string { return "nrOutliers" }

func (NrOutliers) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return apply(d, opts, func(col []float64) (float64, error) {
		q25, err := stats.Percentile(col, 25)
		if err != nil {
			return 0, err
		}
		q75, err := stats.Percentile(col, 75)
		if err != nil {
			return 0, err
		}
		iqr := q75 - q25
		lower, upper := q25-1.5*iqr, q75+1.5*iqr
		n := 0.0
		for _, v := range col {
			if v < lower || v > upper {
				n++
			}
		}
		return n, nil
	})
}

func (Cor) Name() string { return "cor" }

func (Cor) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return pairwise(d, func(a, b []float64) (float64, error) {
		c := stat.Correlation(a, b, nil)
		if math.IsNaN(c) {
			return 0, errors.New("statistical: undefined correlation")
		}
		return math.Abs(c), nil
	})
}

func (Cov) Name() string { return "cov" }

func (Cov) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return pairwise(d, func(a, b []float64) (float64, error) {
		return stat.Covariance(a, b, nil), nil
	})
}

func (NrCorAttr) Name() string { return "nrCorAttr" }

func (NrCorAttr) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	cors, err := (Cor{}).Execute(d, opts)
	if err != nil {
		return nil, err
	}
	n := 0.0
	for _, c := range cors {
		if c >= 0.5 {
			n++
		}
	}
	return []float64{n / float64(len(cors))}, nil
}

// apply computes f over each numeric attribute column. With ByClass set the
// columns are split per class first, classes ordered by first appearance,
// and the per-class results concatenated class-major.
func apply(d dataset.Dataset, opts measures.Options, f func(col []float64) (float64, error)) ([]float64, error) {
	cols := d.Columns()
	if len(cols) == 0 {
		return nil, errors.New("statistical: no numeric attributes")
	}
	if !opts.ByClass {
		out := make([]float64, len(cols))
		for i, col := range cols {
			v, err := f(col)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	var out []float64
	for _, class := range d.Classes() {
		for _, col := range cols {
			var sub []float64
			for i, l := range d.Labels {
				if l == class {
					sub = append(sub, col[i])
				}
			}
			v, err := f(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// pairwise computes f over every unordered pair of numeric attributes.
func pairwise(d dataset.Dataset, f func(a, b []float64) (float64, error)) ([]float64, error) {
	cols := d.Columns()
	if len(cols) < 2 {
		return nil, errors.New("statistical: need at least two numeric attributes")
	}
	var out []float64
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			v, err := f(cols[i], cols[j])
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
