package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// Split is one train/test partition of a dataset.
type Split struct {
	XTrain [][]float64
	YTrain []int
	XTest  [][]float64
	YTest  []int
}

// StratifiedSplit holds out testFraction of the rows while preserving the
// outcome class proportions in both halves. The same seed always produces the
// same row assignment, which keeps every candidate pipeline scored on an
// identical test set across runs.
func StratifiedSplit(ds *Dataset, testFraction float64, seed int64) (*Split, error) {
	if !(testFraction > 0 && testFraction < 1) {
		return nil, fmt.Errorf("test fraction must be in (0, 1), got %v", testFraction)
	}
	if len(ds.X) != len(ds.Y) {
		return nil, fmt.Errorf("feature matrix and labels disagree: %d vs %d rows", len(ds.X), len(ds.Y))
	}

	byClass := map[int][]int{}
	for i, label := range ds.Y {
		byClass[label] = append(byClass[label], i)
	}

	rnd := rand.New(rand.NewSource(seed))
	split := &Split{}
	// Classes are walked in a fixed order so the shuffle sequence is stable.
	for _, label := range []int{0, 1} {
		idx := byClass[label]
		rnd.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })

		nTest := int(math.Round(testFraction * float64(len(idx))))
		for k, i := range idx {
			if k < nTest {
				split.XTest = append(split.XTest, ds.X[i])
				split.YTest = append(split.YTest, ds.Y[i])
			} else {
				split.XTrain = append(split.XTrain, ds.X[i])
				split.YTrain = append(split.YTrain, ds.Y[i])
			}
		}
	}
	if len(split.XTrain) == 0 || len(split.XTest) == 0 {
		return nil, fmt.Errorf("split produced an empty partition (train=%d, test=%d)", len(split.XTrain), len(split.XTest))
	}
	return split, nil
}
