// Package modelbased induces a decision tree over a dataset and measures
// the structure of the induced tree.
package modelbased

import (
	"errors"
	"sort"
)

// Node is an arena-indexed decision tree node. Leaves have both child links
// set to -1.
type Node struct {
	Parent    int
	Depth     int
	Left      int
	Right     int
	Attr      int
	Threshold float64
	Class     int
	N         int
	Gain      float64
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.Left < 0
}

// Tree is a decision tree laid out in a node arena. Node 0 is the root.
type Tree struct {
	Nodes      []Node
	NumAttrs   int
	NumClasses int
}

// Leaves returns the indexes of the childless nodes.
func (t Tree) Leaves() []int {
	var leaves []int
	for i, n := range t.Nodes {
		if n.IsLeaf() {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

// Depth returns the largest node depth.
func (t Tree) Depth() int {
	depth := 0
	for _, n := range t.Nodes {
		if n.Depth > depth {
			depth = n.Depth
		}
	}
	return depth
}

// Induce builds a CART-style decision tree over numeric rows X with class
// indexes y. Splits minimise gini impurity over midpoint thresholds and
// growing stops on purity or when no split improves impurity. Induction is
// deterministic for a fixed dataset.
func Induce(X [][]float64, y []int, numClasses int) (Tree, error) {
	if len(X) == 0 || len(X) != len(y) {
		return Tree{}, errors.New("modelbased: empty or mismatched training data")
	}
	t := Tree{NumAttrs: len(X[0]), NumClasses: numClasses}
	rows := make([]int, len(X))
	for i := range rows {
		rows[i] = i
	}
	t.grow(X, y, rows, -1, 0)
	return t, nil
}

// grow appends the node covering rows and recurses into its children.
// Returns the index of the appended node.
func (t *Tree) grow(X [][]float64, y []int, rows []int, parent, depth int) int {
	counts := make([]int, t.NumClasses)
	for _, r := range rows {
		counts[y[r]]++
	}
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		Parent: parent,
		Depth:  depth,
		Left:   -1,
		Right:  -1,
		Class:  argmax(counts),
		N:      len(rows),
	})

	if pure(counts) || len(rows) < 2 {
		return idx
	}

	attr, threshold, gain := bestSplit(X, y, rows, t.NumAttrs, t.NumClasses, gini(counts))
	if attr < 0 {
		return idx
	}

	var left, right []int
	for _, r := range rows {
		if X[r][attr] <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}

	t.Nodes[idx].Attr = attr
	t.Nodes[idx].Threshold = threshold
	t.Nodes[idx].Gain = gain
	l := t.grow(X, y, left, idx, depth+1)
	r := t.grow(X, y, right, idx, depth+1)
	t.Nodes[idx].Left = l
	t.Nodes[idx].Right = r
	return idx
}

// bestSplit scans every attribute for the midpoint threshold with the
// largest impurity decrease. Returns attr -1 when no split has positive
// gain.
func bestSplit(X [][]float64, y []int, rows []int, numAttrs, numClasses int, parentImpurity float64) (int, float64, float64) {
	bestAttr := -1
	bestThreshold := 0.0
	bestGain := 0.0

	for attr := 0; attr < numAttrs; attr++ {
		attrRows := append([]int(nil), rows...)
		sort.Slice(attrRows, func(i, j int) bool { return X[attrRows[i]][attr] < X[attrRows[j]][attr] })

		leftCounts := make([]int, numClasses)
		rightCounts := make([]int, numClasses)
		for _, r := range attrRows {
			rightCounts[y[r]]++
		}

		for s := 1; s < len(attrRows); s++ {
			prev, cur := attrRows[s-1], attrRows[s]
			leftCounts[y[prev]]++
			rightCounts[y[prev]]--
			if X[prev][attr] == X[cur][attr] {
				continue
			}
			nLeft, nRight := float64(s), float64(len(attrRows)-s)
			weighted := (nLeft*giniOf(leftCounts, nLeft) + nRight*giniOf(rightCounts, nRight)) / float64(len(attrRows))
			gain := parentImpurity - weighted
			if gain > bestGain {
				bestGain = gain
				bestAttr = attr
				bestThreshold = (X[prev][attr] + X[cur][attr]) / 2
			}
		}
	}
	return bestAttr, bestThreshold, bestGain
}

func gini(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	return giniOf(counts, n)
}

func giniOf(counts []int, n float64) float64 {
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}

func pure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func argmax(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}
