// Package crossval partitions labelled data into stratified folds and scores
// learners over them.
package crossval

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when a dataset cannot be partitioned into
// the requested number of folds.
var ErrInsufficientData = errors.New("crossval: insufficient data")

// Learner is a trainable classifier over numeric rows and integer class
// indexes.
type Learner interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
}

// StratifiedFolds assigns each row to a fold in [0,k). Rows are grouped by
// label and distributed round-robin within each group, so every class is
// represented as close to proportionally as row counts allow in every fold.
func StratifiedFolds(labels []string, k int) ([]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("crossval: need at least 2 folds, got %d", k)
	}
	byClass := make(map[string][]int)
	var order []string
	for i, l := range labels {
		if _, ok := byClass[l]; !ok {
			order = append(order, l)
		}
		byClass[l] = append(byClass[l], i)
	}
	for _, l := range order {
		if len(byClass[l]) < k {
			return nil, fmt.Errorf("class %s has %d rows for %d folds: %w", l, len(byClass[l]), k, ErrInsufficientData)
		}
	}
	assign := make([]int, len(labels))
	for _, l := range order {
		for j, row := range byClass[l] {
			assign[row] = j % k
		}
	}
	return assign, nil
}

// Evaluate trains a fresh learner on every combination of k-1 folds and
// scores it on the held-out fold with m. A fold whose training set holds
// fewer than two distinct classes, or whose learner fails to fit, is dropped
// rather than failing the evaluation, so the returned sequence has length at
// most k.
func Evaluate(X [][]float64, y []int, folds []int, k int, learner func() Learner, m Metric) []float64 {
	var scores []float64
	for f := 0; f < k; f++ {
		var (
			trainX, testX [][]float64
			trainY, testY []int
		)
		for i := range X {
			if folds[i] == f {
				testX = append(testX, X[i])
				testY = append(testY, y[i])
			} else {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}
		if len(testY) == 0 || distinct(trainY) < 2 {
			continue
		}
		l := learner()
		if err := l.Fit(trainX, trainY); err != nil {
			continue
		}
		scores = append(scores, m(testY, l.Predict(testX)))
	}
	return scores
}

func distinct(y []int) int {
	seen := make(map[int]bool)
	for _, v := range y {
		seen[v] = true
	}
	return len(seen)
}
