package pipeline

import (
	"errors"
	"math"
	"sort"
)

// MedianImputer replaces NaN entries with per-column medians learned at fit
// time. Serving reuses the training medians, so held-out and request data
// never leak into the statistics.
type MedianImputer struct {
	Medians []float64
}

// Fit computes the median of the non-missing values in each column.
func (im *MedianImputer) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("imputer: empty matrix")
	}
	p := len(X[0])
	im.Medians = make([]float64, p)
	for j := 0; j < p; j++ {
		col := make([]float64, 0, len(X))
		for i := range X {
			if !math.IsNaN(X[i][j]) {
				col = append(col, X[i][j])
			}
		}
		if len(col) == 0 {
			return errors.New("imputer: column with no observed values")
		}
		im.Medians[j] = median(col)
	}
	return nil
}

// Transform returns a copy of X with NaN entries filled from the fitted
// medians.
func (im *MedianImputer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				out[i][j] = im.Medians[j]
			} else {
				out[i][j] = v
			}
		}
	}
	return out
}

func median(vals []float64) float64 {
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
