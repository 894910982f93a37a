package classifier

import (
	"errors"
	"math"
	"math/rand"
	"sync"
)

// RandomForest averages the leaf probabilities of bootstrapped decision
// trees. Trees are grown concurrently, each from its own derived seed so the
// forest is reproducible regardless of scheduling.
type RandomForest struct {
	NumTrees    int
	MaxFeatures int
	Seed        int64

	Trees []*DecisionTree
}

// NewRandomForest returns a forest of n bootstrapped trees, each considering
// sqrt(p) features per split.
func NewRandomForest(n int, seed int64) *RandomForest {
	return &RandomForest{
		NumTrees: n,
		Seed:     seed,
	}
}

func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("randomforest: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("randomforest: X and y length mismatch")
	}
	if rf.NumTrees <= 0 {
		return errors.New("randomforest: tree count must be positive")
	}
	n := len(X)
	maxFeatures := rf.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Sqrt(float64(len(X[0]))))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	rf.Trees = make([]*DecisionTree, rf.NumTrees)
	errCh := make(chan error, rf.NumTrees)
	var wg sync.WaitGroup
	for i := 0; i < rf.NumTrees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Per-tree source, derived from the forest seed.
			rnd := rand.New(rand.NewSource(rf.Seed + int64(i)))
			sample := make([]int, n)
			for j := range sample {
				sample[j] = rnd.Intn(n)
			}
			tree := NewDecisionTree(rf.Seed + int64(i))
			tree.MaxFeatures = maxFeatures
			if err := tree.FitIndices(X, y, sample, rnd); err != nil {
				errCh <- err
				return
			}
			rf.Trees[i] = tree
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		return err
	}
	return nil
}

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for _, tree := range rf.Trees {
		for i, p := range tree.PredictProba(X) {
			out[i] += p
		}
	}
	for i := range out {
		out[i] /= float64(len(rf.Trees))
	}
	return out
}
