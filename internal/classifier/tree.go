package classifier

import (
	"errors"
	"math/rand"
	"sort"
)

// DecisionTree is a CART-style binary classifier using gini impurity and
// numeric threshold splits. Node fields are exported for gob.
type DecisionTree struct {
	// MaxFeatures limits how many randomly chosen features are considered
	// per split; 0 means all. The forest uses this for decorrelation.
	MaxFeatures     int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64

	Root *TreeNode
}

// TreeNode is one node of a fitted tree. Leaves carry the positive-class
// fraction of the training samples that reached them.
type TreeNode struct {
	Leaf      bool
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Samples   int
	PosFrac   float64
}

// NewDecisionTree returns a tree grown until leaves are pure or too small.
func NewDecisionTree(seed int64) *DecisionTree {
	return &DecisionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Seed:            seed,
	}
}

func (t *DecisionTree) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("dtree: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("dtree: X and y length mismatch")
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(t.Seed))
	t.Root = t.build(X, y, idx, rnd)
	return nil
}

// FitIndices trains on a subset of rows, which lets the forest bootstrap by
// index without copying the matrix.
func (t *DecisionTree) FitIndices(X [][]float64, y []int, idx []int, rnd *rand.Rand) error {
	if len(idx) == 0 {
		return errors.New("dtree: empty sample")
	}
	t.Root = t.build(X, y, idx, rnd)
	return nil
}

func (t *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = t.probaSingle(row)
	}
	return out
}

func (t *DecisionTree) probaSingle(x []float64) float64 {
	node := t.Root
	for node != nil && !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	if node == nil {
		return 0.5
	}
	return node.PosFrac
}

func (t *DecisionTree) build(X [][]float64, y []int, idx []int, rnd *rand.Rand) *TreeNode {
	pos := 0
	for _, i := range idx {
		pos += y[i]
	}
	node := &TreeNode{
		Samples: len(idx),
		PosFrac: float64(pos) / float64(len(idx)),
	}
	if pos == 0 || pos == len(idx) || len(idx) < t.MinSamplesSplit {
		node.Leaf = true
		return node
	}

	feature, threshold, gain := t.bestSplit(X, y, idx, rnd)
	if gain <= 0 {
		node.Leaf = true
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < t.MinSamplesLeaf || len(right) < t.MinSamplesLeaf {
		node.Leaf = true
		return node
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = t.build(X, y, left, rnd)
	node.Right = t.build(X, y, right, rnd)
	return node
}

type valueLabel struct {
	v     float64
	label int
}

func (t *DecisionTree) bestSplit(X [][]float64, y []int, idx []int, rnd *rand.Rand) (feature int, threshold, gain float64) {
	p := len(X[0])
	features := make([]int, p)
	for j := range features {
		features[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(a, b int) { features[a], features[b] = features[b], features[a] })
		features = features[:t.MaxFeatures]
	}

	totalPos := 0
	for _, i := range idx {
		totalPos += y[i]
	}
	n := len(idx)
	parent := giniBinary(totalPos, n)

	feature = -1
	for _, f := range features {
		vals := make([]valueLabel, 0, n)
		for _, i := range idx {
			vals = append(vals, valueLabel{X[i][f], y[i]})
		}
		sort.Slice(vals, func(a, b int) bool { return vals[a].v < vals[b].v })

		leftPos, leftN := 0, 0
		for s := 1; s < n; s++ {
			leftPos += vals[s-1].label
			leftN++
			if vals[s].v == vals[s-1].v {
				continue
			}
			rightPos := totalPos - leftPos
			rightN := n - leftN
			weighted := (float64(leftN)*giniBinary(leftPos, leftN) +
				float64(rightN)*giniBinary(rightPos, rightN)) / float64(n)
			if g := parent - weighted; g > gain {
				gain = g
				feature = f
				threshold = (vals[s-1].v + vals[s].v) / 2
			}
		}
	}
	return feature, threshold, gain
}

func giniBinary(pos, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}
