package classifier

import (
	"errors"
	"math"
	"math/rand"
)

// LogisticRegression is a binary logistic classifier trained with full-batch
// gradient descent and L2 regularization. Fields are exported for gob.
type LogisticRegression struct {
	Weights []float64
	Bias    float64

	LearningRate float64
	MaxIter      int
	L2           float64
	Seed         int64
}

// NewLogisticRegression returns a classifier with a fixed iteration cap and
// mild L2 regularization.
func NewLogisticRegression(seed int64) *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		MaxIter:      1000,
		L2:           0.01,
		Seed:         seed,
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// Fit runs gradient descent on the binary cross-entropy loss.
func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("logistic: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("logistic: X and y length mismatch")
	}
	n := len(X)
	p := len(X[0])

	rnd := rand.New(rand.NewSource(m.Seed))
	m.Weights = make([]float64, p)
	for j := range m.Weights {
		// Small random init to break symmetry.
		m.Weights[j] = rnd.NormFloat64() * 0.01
	}
	m.Bias = 0

	for iter := 0; iter < m.MaxIter; iter++ {
		gradW := make([]float64, p)
		gradB := 0.0
		for i, row := range X {
			z := m.Bias
			for j, v := range row {
				z += m.Weights[j] * v
			}
			d := sigmoid(z) - float64(y[i])
			for j, v := range row {
				gradW[j] += d * v
			}
			gradB += d
		}
		for j := range m.Weights {
			gradW[j] = gradW[j]/float64(n) + m.L2*m.Weights[j]
			m.Weights[j] -= m.LearningRate * gradW[j]
		}
		m.Bias -= m.LearningRate * gradB / float64(n)
	}
	return nil
}

// PredictProba returns sigmoid scores for each row.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		z := m.Bias
		for j, v := range row {
			z += m.Weights[j] * v
		}
		out[i] = sigmoid(z)
	}
	return out
}
