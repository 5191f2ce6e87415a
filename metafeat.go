// Package metafeat provides a framework for extracting meta-features that
// characterise labelled tabular datasets.
package metafeat

import (
	"fmt"
	"log"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
	_ "github.com/metafeat/metafeat/measures/general"
	_ "github.com/metafeat/metafeat/measures/infotheo"
	_ "github.com/metafeat/metafeat/measures/landmarking"
	_ "github.com/metafeat/metafeat/measures/modelbased"
	_ "github.com/metafeat/metafeat/measures/statistical"
	"github.com/metafeat/metafeat/output"
	"github.com/metafeat/metafeat/summary"
)

// AllGroups selects every registered measure group.
const AllGroups = "all"

// Pipeline contains all the information for executing a meta-feature
// extraction over a dataset.
type Pipeline struct {
	Groups     []string
	Features   []string
	Options    measures.Options
	Summary    summary.Config
	Executor   measures.Executor
	Formatters []output.ResultFormatter
}

type groupList []string
type featureList []string

// Groups adds measure groups to the pipeline.
func Groups(groups ...string) func() interface{} {
	return func() interface{} {
		return groupList(groups)
	}
}

// Features restricts the pipeline to named features. Only valid when the
// pipeline extracts a single group.
func Features(features ...string) func() interface{} {
	return func() interface{} {
		return featureList(features)
	}
}

// ExtractionOptions sets the group-specific extraction options.
func ExtractionOptions(opts measures.Options) func() interface{} {
	return func() interface{} {
		return opts
	}
}

// Summarise sets the summary configuration applied to every raw output.
func Summarise(cfg summary.Config) func() interface{} {
	return func() interface{} {
		return cfg
	}
}

// Executor sets the executor the pipeline computes requests through, for
// example a caching one.
func Executor(executor measures.Executor) func() interface{} {
	return func() interface{} {
		return executor
	}
}

// ResultOutput adds result formatters to the pipeline.
func ResultOutput(formatters ...output.ResultFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// NewPipeline creates a new extraction pipeline. Components are provided via
// the optional functional arguments; anything unset takes its default when
// the pipeline executes.
func NewPipeline(components ...func() interface{}) Pipeline {
	var p Pipeline
	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case groupList:
			p.Groups = v
		case featureList:
			p.Features = v
		case measures.Options:
			p.Options = v
		case summary.Config:
			p.Summary = v
		case measures.Executor:
			p.Executor = v
		case []output.ResultFormatter:
			p.Formatters = v
		}
	}
	return p
}

// Extract runs the pipeline synchronously over a dataset and merges the
// per-group results. The group "all", or an empty group list, expands to
// every registered group.
func (p Pipeline) Extract(d dataset.Dataset) (summary.Result, error) {
	groups, err := p.expandGroups()
	if err != nil {
		return nil, err
	}
	if p.Features != nil && len(groups) != 1 {
		return nil, fmt.Errorf("metafeat: features can only be selected for a single group, got %d groups", len(groups))
	}

	executor := p.Executor
	if executor == nil {
		executor = measures.NewMeasurementExecutor(nil)
	}
	cfg := p.Summary
	if cfg.Methods == nil {
		cfg = summary.DefaultConfig()
	}

	merged := summary.Result{}
	for _, g := range groups {
		result, err := executor.Execute(d, g, p.Features, p.Options, cfg)
		if err != nil {
			return nil, err
		}
		merged.Merge(result)
	}
	return merged, nil
}

// Execute runs the pipeline over a dataset, sending results down c as each
// group completes. The channel is closed once a Done or Error result has been
// sent.
func (p Pipeline) Execute(d dataset.Dataset, c chan Result) {
	defer close(c)
	log.Println("starting extraction pipeline...")

	groups, err := p.expandGroups()
	if err != nil {
		c <- Result{Error: err, Type: Error}
		return
	}
	if p.Features != nil && len(groups) != 1 {
		c <- Result{
			Error: fmt.Errorf("metafeat: features can only be selected for a single group, got %d groups", len(groups)),
			Type:  Error,
		}
		return
	}

	executor := p.Executor
	if executor == nil {
		executor = measures.NewMeasurementExecutor(nil)
	}
	cfg := p.Summary
	if cfg.Methods == nil {
		cfg = summary.DefaultConfig()
	}

	merged := summary.Result{}
	for _, g := range groups {
		log.Printf("extracting %s measures...\n", g)
		result, err := executor.Execute(d, g, p.Features, p.Options, cfg)
		if err != nil {
			c <- Result{Group: g, Error: err, Type: Error}
			return
		}
		merged.Merge(result)
		c <- Result{Group: g, Measurements: result, Type: Measurement}
	}

	if len(p.Formatters) > 0 {
		formatted := make([]string, len(p.Formatters))
		for i, f := range p.Formatters {
			s, err := f(merged)
			if err != nil {
				c <- Result{Error: err, Type: Error}
				return
			}
			formatted[i] = s
		}
		c <- Result{Formatted: formatted, Type: Formatted}
	}

	c <- Result{Measurements: merged, Type: Done}
}

func (p Pipeline) expandGroups() ([]string, error) {
	if len(p.Groups) == 0 {
		return measures.Groups(), nil
	}
	var groups []string
	for _, g := range p.Groups {
		if g == AllGroups {
			return measures.Groups(), nil
		}
		if _, err := measures.Features(g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// ListGroups returns the registered measure groups.
func ListGroups() []string {
	return measures.Groups()
}

// ListFeatures returns the feature names of a group.
func ListFeatures(group string) ([]string, error) {
	return measures.Features(group)
}
