// Package predictor owns the loaded winning pipeline and its metadata for
// the lifetime of the serving process.
package predictor

import (
	"errors"
	"fmt"

	"github.com/diapredict/diapredict/internal/artifact"
	"github.com/diapredict/diapredict/internal/evaluate"
	"github.com/diapredict/diapredict/internal/pipeline"
	"github.com/diapredict/diapredict/internal/schema"
)

// ErrNotReady is returned when prediction is attempted before a successful
// artifact load.
var ErrNotReady = errors.New("model not loaded")

// Service holds the winner and metadata loaded at startup. After Load returns
// it is read-only, so concurrent request handlers share it without locking.
type Service struct {
	meta  *artifact.Metadata
	model *pipeline.Pipeline
}

// Load reads the metadata and the winning pipeline from the model directory.
// It is all-or-nothing: any missing or corrupt artifact fails the load and no
// partially initialized service is returned.
func Load(dir string) (*Service, error) {
	store := artifact.NewStore(dir)
	meta, err := store.LoadMetadata()
	if err != nil {
		return nil, fmt.Errorf("loading model artifacts: %w", err)
	}
	if len(meta.FeatureOrder) != schema.NumFeatures() {
		return nil, fmt.Errorf("metadata feature order has %d fields, expected %d", len(meta.FeatureOrder), schema.NumFeatures())
	}
	for i, name := range meta.FeatureOrder {
		if name != schema.FeatureOrder[i] {
			return nil, fmt.Errorf("metadata feature order mismatch at %d: %q != %q", i, name, schema.FeatureOrder[i])
		}
	}
	model, err := store.LoadBest()
	if err != nil {
		return nil, fmt.Errorf("loading model artifacts: %w", err)
	}
	if !model.Fitted {
		return nil, errors.New("loading model artifacts: best model was never fitted")
	}
	return &Service{meta: meta, model: model}, nil
}

// Prediction is the outcome of scoring one request.
type Prediction struct {
	Model       string  `json:"model"`
	Probability float64 `json:"probability"`
	Label       string  `json:"label"`
}

// Predict scores one feature vector with the winning pipeline. A classifier
// failure propagates as an error; there is no fallback value.
func (s *Service) Predict(vec []float64) (*Prediction, error) {
	if s == nil || s.model == nil {
		return nil, ErrNotReady
	}
	prob, err := s.model.PredictProbaOne(vec)
	if err != nil {
		return nil, err
	}
	label := "Negative"
	if prob >= evaluate.Threshold {
		label = "Positive"
	}
	return &Prediction{
		Model:       s.meta.BestDisplayName(),
		Probability: prob,
		Label:       label,
	}, nil
}

// Ready reports whether artifacts are loaded.
func (s *Service) Ready() bool {
	return s != nil && s.model != nil && s.meta != nil
}

// BestModelName returns the winner's display name.
func (s *Service) BestModelName() string {
	if s == nil || s.meta == nil {
		return ""
	}
	return s.meta.BestDisplayName()
}

// Metadata exposes the persisted selection record for the metrics endpoint.
func (s *Service) Metadata() *artifact.Metadata {
	if s == nil {
		return nil
	}
	return s.meta
}
