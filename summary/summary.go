// Package summary reduces multi-valued measure outputs to fixed sets of
// named scalars.
package summary

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrUnknownSummarizer is returned when a requested summariser is neither
// built in nor registered on the engine.
var ErrUnknownSummarizer = errors.New("summary: unknown summarizer")

// NonAggregated passes every value through under a numbered key instead of
// reducing the sequence.
const NonAggregated = "non.aggregated"

// Params holds named summariser parameters, such as the histogram bin count
// or an explicit min/max range.
type Params map[string]float64

// Config selects the summarisers to apply and their parameters. An empty
// Methods list is equivalent to requesting only NonAggregated.
type Config struct {
	Methods []string
	Params  Params
}

// DefaultConfig is the summary applied when a caller does not choose one.
func DefaultConfig() Config {
	return Config{Methods: []string{"mean", "sd"}}
}

// Result maps "<feature>.<summarizer>" keys (or numbered variants for
// multi-valued summarisers) to values.
type Result map[string]float64

// Merge copies every entry of other into r.
func (r Result) Merge(other Result) {
	for k, v := range other {
		r[k] = v
	}
}

// Keys returns the result keys in sorted order.
func (r Result) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summarizer reduces a sequence of values to one or more values. A returned
// slice of length one is emitted under "<feature>.<name>"; longer slices are
// emitted under "<feature>.<name>.<i>".
type Summarizer func(values []float64, p Params) ([]float64, error)

// Engine resolves summariser names and applies them to measure outputs.
// User summarisers may be added with Register; the zero value is not usable,
// construct with NewEngine.
type Engine struct {
	summarizers map[string]Summarizer
}

// NewEngine returns an engine with the built-in summarisers registered.
func NewEngine() *Engine {
	e := &Engine{summarizers: make(map[string]Summarizer)}
	e.Register("mean", scalar(func(v []float64) float64 { return stat.Mean(v, nil) }))
	e.Register("sd", scalar(func(v []float64) float64 { return stat.StdDev(v, nil) }))
	e.Register("var", scalar(func(v []float64) float64 { return stat.Variance(v, nil) }))
	e.Register("skewness", scalar(func(v []float64) float64 { return stat.Skew(v, nil) }))
	e.Register("kurtosis", scalar(func(v []float64) float64 { return stat.ExKurtosis(v, nil) }))
	e.Register("min", scalarErr(stats.Min))
	e.Register("max", scalarErr(stats.Max))
	e.Register("median", scalarErr(stats.Median))
	e.Register("quantiles", quantiles)
	e.Register("histogram", histogram)
	e.Register(NonAggregated, nonAggregated)
	return e
}

// Register adds a named summariser to the engine. Registering over an
// existing name replaces it.
func (e *Engine) Register(name string, s Summarizer) {
	e.summarizers[name] = s
}

// Summarize applies every summariser in cfg to values and merges the
// results. Deterministic for fixed inputs.
func (e *Engine) Summarize(feature string, values []float64, cfg Config) (Result, error) {
	methods := cfg.Methods
	if len(methods) == 0 {
		methods = []string{NonAggregated}
	}
	res := Result{}
	for _, name := range methods {
		s, ok := e.summarizers[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrUnknownSummarizer)
		}
		out, err := s(values, cfg.Params)
		if err != nil {
			return nil, fmt.Errorf("summary: %s of %s: %v", name, feature, err)
		}
		switch {
		case name == NonAggregated:
			for i, v := range out {
				res[fmt.Sprintf("%s.%d", feature, i)] = v
			}
		case len(out) == 1:
			res[fmt.Sprintf("%s.%s", feature, name)] = out[0]
		default:
			for i, v := range out {
				res[fmt.Sprintf("%s.%s.%d", feature, name, i)] = v
			}
		}
	}
	return res, nil
}

// scalar adapts a plain reducer. An empty input yields NaN so the result
// shape stays stable when a feature produced no values.
func scalar(f func([]float64) float64) Summarizer {
	return func(values []float64, _ Params) ([]float64, error) {
		if len(values) == 0 {
			return []float64{math.NaN()}, nil
		}
		return []float64{f(values)}, nil
	}
}

// scalarErr adapts reducers in the montanaflynn/stats error-returning style.
func scalarErr(f func(stats.Float64Data) (float64, error)) Summarizer {
	return func(values []float64, _ Params) ([]float64, error) {
		if len(values) == 0 {
			return []float64{math.NaN()}, nil
		}
		v, err := f(values)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
}

func nonAggregated(values []float64, _ Params) ([]float64, error) {
	return values, nil
}

// quantiles emits the 0, 25, 50, 75 and 100 percentiles.
func quantiles(values []float64, _ Params) ([]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	lo, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	hi, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	out := []float64{lo, 0, 0, 0, hi}
	for i, p := range []float64{25, 50, 75} {
		q, err := stats.Percentile(values, p)
		if err != nil {
			return nil, err
		}
		out[i+1] = q
	}
	return out, nil
}

// histogram bins the sequence into equal-width buckets over [min,max] and
// emits the raw count of each bucket. Values outside an explicitly supplied
// range are clipped into the boundary buckets.
func histogram(values []float64, p Params) ([]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	bins := 10
	if b, ok := p["bins"]; ok {
		if b < 1 {
			return nil, fmt.Errorf("histogram needs at least one bin, got %v", b)
		}
		bins = int(b)
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if v, ok := p["min"]; ok {
		lo = v
	}
	if v, ok := p["max"]; ok {
		hi = v
	}
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		b := 0
		if width > 0 {
			b = int((v - lo) / width)
			if b < 0 {
				b = 0
			}
			if b >= bins {
				b = bins - 1
			}
		}
		counts[b]++
	}
	return counts, nil
}
