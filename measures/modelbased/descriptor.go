package modelbased

import (
	"math"

	"github.com/metafeat/metafeat/dataset"
	"github.com/metafeat/metafeat/measures"
)

func init() {
	measures.Register(measures.ModelBased, false, Nodes{})
	measures.Register(measures.ModelBased, false, Leaves{})
	measures.Register(measures.ModelBased, true, TreeDepth{})
	measures.Register(measures.ModelBased, true, LeavesBranch{})
	measures.Register(measures.ModelBased, true, LeavesPerClass{})
	measures.Register(measures.ModelBased, true, NodesPerLevel{})
	measures.Register(measures.ModelBased, false, NodesPerAttr{})
	measures.Register(measures.ModelBased, false, NodesPerInst{})
	measures.Register(measures.ModelBased, true, TreeImbalance{})
	measures.Register(measures.ModelBased, true, VarImportance{})
}

// Describe computes every structural statistic of an induced tree by
// traversal. The tree may come from any induction procedure; only its shape
// matters.
func Describe(t Tree) map[string][]float64 {
	leaves := t.Leaves()

	nodeDepths := make([]float64, len(t.Nodes))
	for i, n := range t.Nodes {
		nodeDepths[i] = float64(n.Depth)
	}

	leafDepths := make([]float64, len(leaves))
	for i, l := range leaves {
		leafDepths[i] = float64(t.Nodes[l].Depth)
	}

	perClass := make([]float64, t.NumClasses)
	for _, l := range leaves {
		perClass[t.Nodes[l].Class]++
	}
	for i := range perClass {
		perClass[i] /= float64(len(leaves))
	}

	perLevel := make([]float64, t.Depth()+1)
	for _, n := range t.Nodes {
		perLevel[n.Depth]++
	}

	total := float64(t.Nodes[0].N)
	imbalance := make([]float64, len(leaves))
	for i, l := range leaves {
		p := float64(t.Nodes[l].N) / total
		imbalance[i] = -p * math.Log2(p)
	}

	importance := make([]float64, t.NumAttrs)
	internal := 0.0
	for _, n := range t.Nodes {
		if n.IsLeaf() {
			continue
		}
		internal++
		importance[n.Attr] += float64(n.N) / total * n.Gain
	}

	return map[string][]float64{
		"nodes":          {float64(len(t.Nodes))},
		"leaves":         {float64(len(leaves))},
		"treeDepth":      nodeDepths,
		"leavesBranch":   leafDepths,
		"leavesPerClass": perClass,
		"nodesPerLevel":  perLevel,
		"internal":       {internal},
		"treeImbalance":  imbalance,
		"varImportance":  importance,
	}
}

func induced(d dataset.Dataset) (Tree, error) {
	X, err := d.Matrix()
	if err != nil {
		return Tree{}, err
	}
	return Induce(X, d.ClassIndexes(), len(d.Classes()))
}

func describe(d dataset.Dataset, feature string) ([]float64, error) {
	t, err := induced(d)
	if err != nil {
		return nil, err
	}
	return Describe(t)[feature], nil
}

// Nodes counts the nodes of the induced tree.
type Nodes struct{}

// Leaves counts the childless nodes of the induced tree.
type Leaves struct{}

// TreeDepth is the depth of every node of the induced tree.
type TreeDepth struct{}

// LeavesBranch is the depth of every leaf, the length of each root-to-leaf
// branch.
type LeavesBranch struct{}

// LeavesPerClass is the fraction of leaves predicting each class.
type LeavesPerClass struct{}

// NodesPerLevel counts the nodes at each depth level.
type NodesPerLevel struct{}

// NodesPerAttr is the ratio of split nodes to attributes.
type NodesPerAttr struct{}

// NodesPerInst is the ratio of split nodes to instances.
type NodesPerInst struct{}

// TreeImbalance is, per leaf, the entropy contribution of the fraction of
// instances the leaf covers.
type TreeImbalance struct{}

// VarImportance is, per attribute, the impurity decrease accumulated over
// the nodes splitting on it.
type VarImportance struct{}

func (Nodes) Name() string { return "nodes" }

func (Nodes) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "nodes")
}

func (Leaves) Name() string { return "leaves" }

func (Leaves) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "leaves")
}

func (TreeDepth) Name() string { return "treeDepth" }

func (TreeDepth) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "treeDepth")
}

func (LeavesBranch) Name() string { return "leavesBranch" }

func (LeavesBranch) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "leavesBranch")
}

func (LeavesPerClass) Name() string { return "leavesPerClass" }

func (LeavesPerClass) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "leavesPerClass")
}

func (NodesPerLevel) Name() string { return "nodesPerLevel" }

func (NodesPerLevel) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "nodesPerLevel")
}

func (NodesPerAttr) Name() string { return "nodesPerAttr" }

func (NodesPerAttr) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	t, err := induced(d)
	if err != nil {
		return nil, err
	}
	internal := Describe(t)["internal"][0]
	return []float64{internal / float64(t.NumAttrs)}, nil
}

func (NodesPerInst) Name() string { return "nodesPerInst" }

func (NodesPerInst) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	t, err := induced(d)
	if err != nil {
		return nil, err
	}
	internal := Describe(t)["internal"][0]
	return []float64{internal / float64(d.Rows())}, nil
}

func (TreeImbalance) Name() string { return "treeImbalance" }

func (TreeImbalance) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "treeImbalance")
}

func (VarImportance) Name() string { return "varImportance" }

func (VarImportance) Execute(d dataset.Dataset, _ measures.Options) ([]float64, error) {
	return describe(d, "varImportance")
}
