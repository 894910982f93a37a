package classifier

import (
	"errors"
	"sort"
)

// KNN is a k-nearest-neighbors classifier. Fitting just stores the training
// data; the probability of the positive class is the share of positive labels
// among the K nearest neighbors by Euclidean distance.
type KNN struct {
	K int
	X [][]float64
	Y []int
}

// NewKNN returns a classifier with the given neighbor count.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

func (m *KNN) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("knn: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("knn: X and y length mismatch")
	}
	if m.K <= 0 || m.K > len(X) {
		return errors.New("knn: neighbor count out of range")
	}
	m.X = X
	m.Y = y
	return nil
}

func (m *KNN) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = m.probaSingle(row)
	}
	return out
}

func (m *KNN) probaSingle(xi []float64) float64 {
	type neighbor struct {
		dist  float64
		label int
	}
	// Keep a sorted window of the K closest points seen so far. Squared
	// distance preserves ordering and avoids the square root.
	nbrs := make([]neighbor, 0, m.K)
	for j, xj := range m.X {
		d := euclidSquared(xi, xj)
		if len(nbrs) < m.K {
			nbrs = append(nbrs, neighbor{d, m.Y[j]})
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].dist < nbrs[b].dist })
		} else if d < nbrs[len(nbrs)-1].dist {
			nbrs[len(nbrs)-1] = neighbor{d, m.Y[j]}
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].dist < nbrs[b].dist })
		}
	}
	pos := 0
	for _, nb := range nbrs {
		pos += nb.label
	}
	return float64(pos) / float64(len(nbrs))
}

func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
