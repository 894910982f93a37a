package selection

import (
	"errors"

	"github.com/diapredict/diapredict/internal/evaluate"
)

// Select picks the winning pipeline key by strict lexicographic comparison on
// (accuracy, precision, recall). Candidates are compared in the given order,
// and only a strictly better candidate displaces the current best, so a full
// tie keeps the earliest-evaluated one. F1 deliberately plays no part.
func Select(order []string, metrics map[string]evaluate.Metrics) (string, error) {
	if len(order) == 0 {
		return "", errors.New("selection: no candidates")
	}
	best := ""
	var bestM evaluate.Metrics
	for _, key := range order {
		m, ok := metrics[key]
		if !ok {
			return "", errors.New("selection: missing metrics for candidate " + key)
		}
		if best == "" || better(m, bestM) {
			best = key
			bestM = m
		}
	}
	return best, nil
}

func better(a, b evaluate.Metrics) bool {
	if a.Accuracy != b.Accuracy {
		return a.Accuracy > b.Accuracy
	}
	if a.Precision != b.Precision {
		return a.Precision > b.Precision
	}
	return a.Recall > b.Recall
}
