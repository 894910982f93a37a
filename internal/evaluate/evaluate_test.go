package evaluate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diapredict/diapredict/internal/classifier"
	"github.com/diapredict/diapredict/internal/evaluate"
	"github.com/diapredict/diapredict/internal/pipeline"
)

func TestFromConfusion_Formulas(t *testing.T) {
	tests := []struct {
		name string
		cm   evaluate.ConfusionMatrix
		want evaluate.Metrics
	}{
		{
			name: "mixed counts",
			cm:   evaluate.ConfusionMatrix{TN: 50, FP: 10, FN: 20, TP: 20},
			want: evaluate.Metrics{
				ConfusionMatrix: evaluate.ConfusionMatrix{TN: 50, FP: 10, FN: 20, TP: 20},
				Accuracy:        0.7,
				Precision:       20.0 / 30.0,
				Recall:          0.5,
				F1Score:         2 * (20.0 / 30.0) * 0.5 / (20.0/30.0 + 0.5),
			},
		},
		{
			name: "no positive predictions, precision defined as zero",
			cm:   evaluate.ConfusionMatrix{TN: 80, FP: 0, FN: 20, TP: 0},
			want: evaluate.Metrics{
				ConfusionMatrix: evaluate.ConfusionMatrix{TN: 80, FP: 0, FN: 20, TP: 0},
				Accuracy:        0.8,
			},
		},
		{
			name: "no actual positives, recall defined as zero",
			cm:   evaluate.ConfusionMatrix{TN: 90, FP: 10, FN: 0, TP: 0},
			want: evaluate.Metrics{
				ConfusionMatrix: evaluate.ConfusionMatrix{TN: 90, FP: 10, FN: 0, TP: 0},
				Accuracy:        0.9,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate.FromConfusion(tt.cm)
			assert.InDelta(t, tt.want.Accuracy, got.Accuracy, 1e-12)
			assert.InDelta(t, tt.want.Precision, got.Precision, 1e-12)
			assert.InDelta(t, tt.want.Recall, got.Recall, 1e-12)
			assert.InDelta(t, tt.want.F1Score, got.F1Score, 1e-12)
			assert.Equal(t, tt.cm, got.ConfusionMatrix)
		})
	}
}

func separableData() ([][]float64, []int) {
	var X [][]float64
	var y []int
	for i := 0; i < 20; i++ {
		X = append(X, []float64{float64(i % 5), 1})
		y = append(y, 0)
		X = append(X, []float64{float64(i%5) + 20, 1})
		y = append(y, 1)
	}
	return X, y
}

func TestEvaluate_ConfusionSumsToTestSize(t *testing.T) {
	X, y := separableData()

	p := &pipeline.Pipeline{
		Key:         "knn",
		DisplayName: "K-Nearest Neighbors",
		Imputer:     &pipeline.MedianImputer{},
		Scaler:      &pipeline.StandardScaler{},
		Classifier:  classifier.NewKNN(3),
	}
	require.NoError(t, p.Fit(X, y))

	m, err := evaluate.Evaluate(p, X, y)
	require.NoError(t, err)

	assert.Equal(t, len(X), m.ConfusionMatrix.Total())

	// Accuracy recomputed from the confusion matrix must match exactly.
	cm := m.ConfusionMatrix
	recomputed := float64(cm.TP+cm.TN) / float64(cm.Total())
	assert.Equal(t, recomputed, m.Accuracy)

	// The data is cleanly separable, so the evaluation should say so.
	assert.Equal(t, 1.0, m.Accuracy)
}

func TestEvaluate_MismatchedLabels(t *testing.T) {
	X, y := separableData()
	p := &pipeline.Pipeline{
		Key:        "knn",
		Imputer:    &pipeline.MedianImputer{},
		Classifier: classifier.NewKNN(3),
	}
	require.NoError(t, p.Fit(X, y))

	_, err := evaluate.Evaluate(p, X, y[:len(y)-1])
	assert.Error(t, err)
}
