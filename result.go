package metafeat

import "github.com/metafeat/metafeat/summary"

// ResultType discriminates the results a pipeline sends down its channel.
type ResultType uint8

const (
	// Measurement results carry the extraction of one group.
	Measurement ResultType = iota
	// Formatted results carry the merged extraction rendered by each formatter.
	Formatted
	// Error results terminate the pipeline.
	Error
	// Done results carry the merged extraction and close the pipeline.
	Done
)

// Result is the output of an extraction pipeline.
type Result struct {
	Group        string
	Measurements summary.Result
	Formatted    []string
	Error        error
	Type         ResultType
}
