package pipeline

import "github.com/diapredict/diapredict/internal/classifier"

// Candidate pipeline keys, in training order. Selection ties keep the
// earliest candidate, so this order is part of the model contract.
const (
	KeyLogistic = "lr"
	KeyKNN      = "knn"
	KeyTree     = "dt"
	KeyForest   = "rf"
)

// DisplayNames maps pipeline keys to the names reported to API clients.
var DisplayNames = map[string]string{
	KeyLogistic: "Logistic Regression",
	KeyKNN:      "K-Nearest Neighbors",
	KeyTree:     "Decision Tree",
	KeyForest:   "Random Forest",
}

// Candidates instantiates the four candidate pipelines in their fixed
// training order. Scale-sensitive classifiers get a standard scaler; the
// tree-based ones do not need one.
func Candidates(seed int64) []*Pipeline {
	return []*Pipeline{
		{
			Key:         KeyLogistic,
			DisplayName: DisplayNames[KeyLogistic],
			Imputer:     &MedianImputer{},
			Scaler:      &StandardScaler{},
			Classifier:  classifier.NewLogisticRegression(seed),
		},
		{
			Key:         KeyKNN,
			DisplayName: DisplayNames[KeyKNN],
			Imputer:     &MedianImputer{},
			Scaler:      &StandardScaler{},
			Classifier:  classifier.NewKNN(11),
		},
		{
			Key:         KeyTree,
			DisplayName: DisplayNames[KeyTree],
			Imputer:     &MedianImputer{},
			Classifier:  classifier.NewDecisionTree(seed),
		},
		{
			Key:         KeyForest,
			DisplayName: DisplayNames[KeyForest],
			Imputer:     &MedianImputer{},
			Classifier:  classifier.NewRandomForest(200, seed),
		},
	}
}
