package pipeline

import (
	"errors"
	"math"
)

// StandardScaler standardizes each column to zero mean and unit variance
// using statistics learned at fit time.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

func (sc *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: empty matrix")
	}
	p := len(X[0])
	n := float64(len(X))
	sc.Mean = make([]float64, p)
	sc.Std = make([]float64, p)
	for j := 0; j < p; j++ {
		sum := 0.0
		for i := range X {
			sum += X[i][j]
		}
		sc.Mean[j] = sum / n

		variance := 0.0
		for i := range X {
			d := X[i][j] - sc.Mean[j]
			variance += d * d
		}
		sc.Std[j] = math.Sqrt(variance / n)
	}
	return nil
}

func (sc *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if sc.Std[j] != 0 {
				out[i][j] = (v - sc.Mean[j]) / sc.Std[j]
			} else {
				out[i][j] = 0
			}
		}
	}
	return out
}
