// Package pipeline composes the impute → optionally scale → classify chain
// that every candidate model shares. A fitted pipeline owns its imputation
// and scaling statistics; pipelines never share state.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/diapredict/diapredict/internal/classifier"
)

// Pipeline is one candidate model: an imputer, an optional scaler and a
// classifier, applied in that order. All state is exported for gob.
type Pipeline struct {
	Key         string
	DisplayName string
	Imputer     *MedianImputer
	Scaler      *StandardScaler
	Classifier  classifier.Classifier
	Fitted      bool
}

// Fit trains each stage on the output of the previous one.
func (p *Pipeline) Fit(X [][]float64, y []int) error {
	if err := p.Imputer.Fit(X); err != nil {
		return fmt.Errorf("%s: %w", p.Key, err)
	}
	X = p.Imputer.Transform(X)
	if p.Scaler != nil {
		if err := p.Scaler.Fit(X); err != nil {
			return fmt.Errorf("%s: %w", p.Key, err)
		}
		X = p.Scaler.Transform(X)
	}
	if err := p.Classifier.Fit(X, y); err != nil {
		return fmt.Errorf("%s: %w", p.Key, err)
	}
	p.Fitted = true
	return nil
}

// PredictProba applies the fitted transforms and returns positive-class
// probabilities. Statistics learned at fit time are used as-is.
func (p *Pipeline) PredictProba(X [][]float64) ([]float64, error) {
	if !p.Fitted {
		return nil, errors.New("pipeline not fitted")
	}
	X = p.Imputer.Transform(X)
	if p.Scaler != nil {
		X = p.Scaler.Transform(X)
	}
	probs := p.Classifier.PredictProba(X)
	if len(probs) != len(X) {
		return nil, fmt.Errorf("%s: classifier returned %d probabilities for %d rows", p.Key, len(probs), len(X))
	}
	for _, pr := range probs {
		if pr < 0 || pr > 1 || pr != pr {
			return nil, fmt.Errorf("%s: classifier produced probability outside [0,1]", p.Key)
		}
	}
	return probs, nil
}

// PredictProbaOne scores a single feature vector.
func (p *Pipeline) PredictProbaOne(x []float64) (float64, error) {
	probs, err := p.PredictProba([][]float64{x})
	if err != nil {
		return 0, err
	}
	return probs[0], nil
}
