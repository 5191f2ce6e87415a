package landmarking

import (
	"fmt"

	"github.com/metafeat/metafeat/crossval"
	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
)

func init() {
	measures.Register(measures.Landmarking, true, NaiveBayes{})
	measures.Register(measures.Landmarking, true, OneNN{})
	measures.Register(measures.Landmarking, true, EliteNN{})
	measures.Register(measures.Landmarking, true, LinearDiscr{})
	measures.Register(measures.Landmarking, true, BestNode{})
	measures.Register(measures.Landmarking, true, RandomNode{})
	measures.Register(measures.Landmarking, true, WorstNode{})
}

// NaiveBayes scores a Gaussian naive Bayes landmarker.
type NaiveBayes struct{}

// OneNN scores a 1-nearest-neighbour landmarker over all attributes.
type OneNN struct{}

// EliteNN scores a 1-nearest-neighbour landmarker restricted to the most
// informative attribute.
type EliteNN struct{}

// LinearDiscr scores a linear discriminant landmarker.
type LinearDiscr struct{}

// BestNode scores a decision stump split on the most informative attribute.
type BestNode struct{}

// RandomNode scores a decision stump split on a seeded random attribute.
type RandomNode struct{}

// WorstNode scores a decision stump split on the least informative
// attribute.
type WorstNode struct{}

func (NaiveBayes) Name() string { return "naiveBayes" }

func (NaiveBayes) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return newGaussianNB(classes)
	})
}

func (OneNN) Name() string { return "oneNN" }

func (OneNN) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(int) crossval.Learner {
		return newOneNN(nil)
	})
}

func (EliteNN) Name() string { return "eliteNN" }

func (EliteNN) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return &eliteNN{classes: classes}
	})
}

func (LinearDiscr) Name() string { return "linearDiscr" }

func (LinearDiscr) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return newLinearDiscriminant(classes)
	})
}

func (BestNode) Name() string { return "bestNode" }

func (BestNode) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return newStump(classes, bestAttr)
	})
}

func (RandomNode) Name() string { return "randomNode" }

func (RandomNode) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return newStump(classes, randomAttr(opts.Seed))
	})
}

func (WorstNode) Name() string { return "worstNode" }

func (WorstNode) Execute(d dataset.Dataset, opts measures.Options) ([]float64, error) {
	return landmark(d, opts, func(classes int) crossval.Learner {
		return newStump(classes, worstAttr)
	})
}

// eliteNN is a 1-nearest-neighbour learner that first selects the single
// attribute with the largest split gain, then classifies on it alone.
type eliteNN struct {
	classes int
	nn      *oneNN
}

func (e *eliteNN) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("landmarking: empty training set")
	}
	e.nn = newOneNN([]int{bestAttr(X, y, e.classes)})
	return e.nn.Fit(X, y)
}

func (e *eliteNN) Predict(X [][]float64) []int {
	return e.nn.Predict(X)
}

// landmark cross-validates a learner over the dataset and returns the
// per-fold scores.
func landmark(d dataset.Dataset, opts measures.Options, factory func(classes int) crossval.Learner) ([]float64, error) {
	X, err := d.Matrix()
	if err != nil {
		return nil, err
	}
	folds, err := crossval.StratifiedFolds(d.Labels, opts.Folds)
	if err != nil {
		return nil, err
	}
	metric, err := scoreMetric(opts.Score)
	if err != nil {
		return nil, err
	}
	classes := len(d.Classes())
	scores := crossval.Evaluate(X, d.ClassIndexes(), folds, opts.Folds, func() crossval.Learner {
		return factory(classes)
	}, metric)
	return scores, nil
}

func scoreMetric(score string) (crossval.Metric, error) {
	switch score {
	case "", "accuracy":
		return crossval.Accuracy, nil
	case "kappa":
		return crossval.Kappa, nil
	}
	return nil, fmt.Errorf("landmarking: unknown score %q", score)
}
