package measures

import (
	"errors"
	"fmt"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/summary"
)

// Extract computes the requested features of a group and summarises every
// raw output with cfg. A nil features slice selects all features of the
// group. An unknown feature name fails the whole call before anything is
// computed; a feature whose computation fails on the data is recorded as an
// empty output instead, so the rest of the group still succeeds. A nil
// engine selects a fresh engine with only the built-in summarisers.
func Extract(group string, d dataset.Dataset, features []string, opts Options, cfg summary.Config, eng *summary.Engine) (summary.Result, error) {
	if eng == nil {
		eng = summary.NewEngine()
	}
	if features == nil {
		all, err := Features(group)
		if err != nil {
			return nil, err
		}
		features = all
	}

	// Resolve everything up front: asking for a feature that does not exist
	// fails the call with no partial result.
	descriptors := make([]Descriptor, len(features))
	for i, f := range features {
		desc, err := Resolve(group, f)
		if err != nil {
			return nil, err
		}
		descriptors[i] = desc
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(group); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInsufficientData)
	}

	// Derive the dataset view the group computes over, once per call.
	switch group {
	case Statistical:
		d = d.NumericView(!opts.NoTransform)
	case InfoTheo:
		d = d.CategoricalView(!opts.NoTransform)
	case ModelBased, Landmarking:
		d = d.Encoded()
	}

	result := summary.Result{}
	for _, desc := range descriptors {
		values, err := desc.Execute(d, opts)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				return nil, fmt.Errorf("%s.%s: %w", group, desc.Name(), err)
			}
			// A degenerate dataset fails one feature, not the group.
			values = nil
		}
		summarised, err := eng.Summarize(desc.Name(), values, cfg)
		if err != nil {
			return nil, err
		}
		result.Merge(summarised)
	}
	return result, nil
}
