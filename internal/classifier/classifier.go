// Package classifier implements the binary classifiers backing the candidate
// pipelines. All of them operate on dense float64 rows with no missing values;
// imputation happens upstream in the pipeline.
package classifier

// Classifier is a binary classifier over dense feature rows.
type Classifier interface {
	// Fit learns parameters from the training matrix and 0/1 labels.
	Fit(X [][]float64, y []int) error
	// PredictProba returns the probability of the positive class per row.
	PredictProba(X [][]float64) []float64
}
