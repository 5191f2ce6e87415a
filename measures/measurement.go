// Package measures provides the measure registry and the per-group
// extraction dispatcher.
package measures

import (
	"errors"
	"fmt"
	"sort"

	"github.com/metafeat/metafeat/crossval"
	"github.com/metafeat/metafeat/dataset"
)

var (
	// ErrUnknownGroup is returned when a group name is not registered.
	ErrUnknownGroup = errors.New("metafeat: unknown measure group")
	// ErrUnknownFeature is returned when a requested feature is not
	// registered in its group. It fails the whole extraction call.
	ErrUnknownFeature = errors.New("metafeat: unknown feature")
	// ErrInsufficientData is returned when a dataset is too small for the
	// requested computation, such as fewer rows in a class than folds.
	ErrInsufficientData = crossval.ErrInsufficientData
)

// Measurement computes one meta-feature for a dataset. Execute returns the
// raw, possibly multi-valued output that is later summarised.
type Measurement interface {
	// Name is the name of the measurement in the output. It should not contain any spaces.
	Name() string
	// Execute computes the implemented measurement for a dataset using the supplied options.
	Execute(d dataset.Dataset, opts Options) ([]float64, error)
}

// Descriptor is a registered measurement with its group metadata.
type Descriptor struct {
	Measurement
	Group  string
	Vector bool
}

var registry = make(map[string][]Descriptor)

// Register adds a measurement to a group. Registration happens in package
// init functions and the registry is never mutated afterwards. Feature names
// must be unique within a group.
func Register(group string, vector bool, m Measurement) {
	for _, d := range registry[group] {
		if d.Name() == m.Name() {
			panic(fmt.Sprintf("metafeat: %s registered twice in group %s", m.Name(), group))
		}
	}
	registry[group] = append(registry[group], Descriptor{Measurement: m, Group: group, Vector: vector})
}

// Groups returns the registered group names in sorted order.
func Groups() []string {
	groups := make([]string, 0, len(registry))
	for g := range registry {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Features returns the feature names of a group in registration order.
func Features(group string) ([]string, error) {
	descriptors, ok := registry[group]
	if !ok {
		return nil, fmt.Errorf("%s: %w", group, ErrUnknownGroup)
	}
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name()
	}
	return names, nil
}

// Resolve looks a feature up in a group. Lookup is case-sensitive exact
// match with no fallback.
func Resolve(group, feature string) (Descriptor, error) {
	descriptors, ok := registry[group]
	if !ok {
		return Descriptor{}, fmt.Errorf("%s: %w", group, ErrUnknownGroup)
	}
	for _, d := range descriptors {
		if d.Name() == feature {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%s.%s: %w", group, feature, ErrUnknownFeature)
}
