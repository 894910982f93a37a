// Package trainer orchestrates one training run: load and clean the data,
// split it, fit every candidate pipeline, evaluate them on the shared
// held-out set, select the winner and persist everything.
package trainer

import (
	"fmt"

	"github.com/diapredict/diapredict/internal/artifact"
	"github.com/diapredict/diapredict/internal/dataset"
	"github.com/diapredict/diapredict/internal/evaluate"
	"github.com/diapredict/diapredict/internal/logger"
	"github.com/diapredict/diapredict/internal/pipeline"
	"github.com/diapredict/diapredict/internal/schema"
	"github.com/diapredict/diapredict/internal/selection"
	"github.com/diapredict/diapredict/pkg/config"
)

// Result summarizes a completed training run.
type Result struct {
	BestKey     string
	BestDisplay string
	Metrics     map[string]evaluate.Metrics
}

// Run executes the whole pipeline. Any failure aborts the run; no artifacts
// are considered valid until the metadata has been written.
func Run(cfg *config.Config) (*Result, error) {
	ds, err := dataset.Load(cfg.Training.DataPath)
	if err != nil {
		return nil, err
	}
	logger.Infof("Loaded dataset: %d rows, %d features", len(ds.X), schema.NumFeatures())

	split, err := dataset.StratifiedSplit(ds, cfg.Training.TestFraction, cfg.Training.Seed)
	if err != nil {
		return nil, err
	}
	logger.Infof("Split dataset: %d train / %d test rows", len(split.XTrain), len(split.XTest))

	candidates := pipeline.Candidates(cfg.Training.Seed)
	order := make([]string, 0, len(candidates))
	metrics := make(map[string]evaluate.Metrics, len(candidates))
	store := artifact.NewStore(cfg.Model.Dir)

	for _, p := range candidates {
		logger.WithModel(p.Key).Infof("Training %s", p.DisplayName)
		if err := p.Fit(split.XTrain, split.YTrain); err != nil {
			return nil, fmt.Errorf("training failed: %w", err)
		}
		m, err := evaluate.Evaluate(p, split.XTest, split.YTest)
		if err != nil {
			return nil, fmt.Errorf("evaluation failed: %w", err)
		}
		order = append(order, p.Key)
		metrics[p.Key] = m
		logger.WithFields(map[string]interface{}{
			"model":     p.Key,
			"accuracy":  m.Accuracy,
			"precision": m.Precision,
			"recall":    m.Recall,
			"f1":        m.F1Score,
			"tn":        m.ConfusionMatrix.TN,
			"fp":        m.ConfusionMatrix.FP,
			"fn":        m.ConfusionMatrix.FN,
			"tp":        m.ConfusionMatrix.TP,
		}).Info("Model evaluated")
	}

	bestKey, err := selection.Select(order, metrics)
	if err != nil {
		return nil, err
	}

	var best *pipeline.Pipeline
	for _, p := range candidates {
		if err := store.SavePipeline(p); err != nil {
			return nil, err
		}
		if p.Key == bestKey {
			best = p
		}
	}
	if err := store.SaveBest(best); err != nil {
		return nil, err
	}
	// Metadata goes last: once it exists, every model it names exists too.
	meta := &artifact.Metadata{
		FeatureOrder:  schema.FeatureOrder,
		BestModelName: bestKey,
		ModelNames:    pipeline.DisplayNames,
		Models:        metrics,
	}
	if err := store.SaveMetadata(meta); err != nil {
		return nil, err
	}

	logger.Infof("Best model: %s (accuracy %.4f)", best.DisplayName, metrics[bestKey].Accuracy)
	return &Result{
		BestKey:     bestKey,
		BestDisplay: best.DisplayName,
		Metrics:     metrics,
	}, nil
}
