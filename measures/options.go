package measures

import "fmt"

// Group names of the registered measure families.
const (
	General     = "general"
	Statistical = "statistical"
	InfoTheo    = "infotheo"
	ModelBased  = "modelbased"
	Landmarking = "landmarking"
)

// Options carries the group-specific extraction options. The zero value
// holds the defaults for every field except Folds and Score, which Extract
// fills through WithDefaults.
type Options struct {
	// ByClass expands statistical measures to one entry per class, ordered
	// by class first appearance.
	ByClass bool
	// NoTransform disables categorical encoding for the statistical group
	// and discretisation for the information-theoretic group; attributes of
	// the other kind are then dropped from the derived dataset instead of
	// converted. Transformation is on by default.
	NoTransform bool
	// Folds is the cross-validation fold count for landmarking. Defaults to 10.
	Folds int
	// Score selects the landmarking metric, accuracy or kappa. Defaults to accuracy.
	Score string
	// Seed feeds the only stochastic learner, randomNode.
	Seed int64
}

// WithDefaults fills the unset fields that have non-zero defaults.
func (o Options) WithDefaults() Options {
	if o.Folds == 0 {
		o.Folds = 10
	}
	if o.Score == "" {
		o.Score = "accuracy"
	}
	return o
}

// Validate checks the options against what the group accepts. It is called
// once per extraction call, not per feature.
func (o Options) Validate(group string) error {
	switch group {
	case General, Statistical, InfoTheo, ModelBased:
		return nil
	case Landmarking:
		if o.Folds < 2 {
			return fmt.Errorf("metafeat: landmarking needs at least 2 folds, got %d", o.Folds)
		}
		if o.Score != "accuracy" && o.Score != "kappa" {
			return fmt.Errorf("metafeat: unknown landmarking score %q", o.Score)
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", group, ErrUnknownGroup)
	}
}
