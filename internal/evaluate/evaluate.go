package evaluate

import (
	"fmt"

	"github.com/diapredict/diapredict/internal/pipeline"
)

// Threshold is the probability cutoff for the positive label, shared by
// evaluation and serving.
const Threshold = 0.5

// ConfusionMatrix holds the binary confusion counts.
type ConfusionMatrix struct {
	TN int `json:"TN"`
	FP int `json:"FP"`
	FN int `json:"FN"`
	TP int `json:"TP"`
}

// Total is the number of scored samples.
func (cm ConfusionMatrix) Total() int {
	return cm.TN + cm.FP + cm.FN + cm.TP
}

// Metrics is the fixed metric set computed for every candidate pipeline.
type Metrics struct {
	ConfusionMatrix ConfusionMatrix `json:"confusion_matrix"`
	Accuracy        float64         `json:"accuracy"`
	Precision       float64         `json:"precision"`
	Recall          float64         `json:"recall"`
	F1Score         float64         `json:"f1_score"`
}

// Evaluate scores a fitted pipeline against the held-out set. Every pipeline
// goes through this exact code path — same threshold, same formulas — so the
// numbers stay comparable.
func Evaluate(p *pipeline.Pipeline, XTest [][]float64, yTest []int) (Metrics, error) {
	if len(XTest) != len(yTest) {
		return Metrics{}, fmt.Errorf("test features and labels disagree: %d vs %d rows", len(XTest), len(yTest))
	}
	probs, err := p.PredictProba(XTest)
	if err != nil {
		return Metrics{}, fmt.Errorf("evaluating %s: %w", p.Key, err)
	}

	var cm ConfusionMatrix
	for i, prob := range probs {
		pred := 0
		if prob >= Threshold {
			pred = 1
		}
		switch {
		case pred == 0 && yTest[i] == 0:
			cm.TN++
		case pred == 1 && yTest[i] == 0:
			cm.FP++
		case pred == 0 && yTest[i] == 1:
			cm.FN++
		default:
			cm.TP++
		}
	}
	return FromConfusion(cm), nil
}

// FromConfusion derives the metric set from confusion counts. Undefined
// ratios (zero denominators) are reported as 0.
func FromConfusion(cm ConfusionMatrix) Metrics {
	m := Metrics{ConfusionMatrix: cm}
	total := cm.Total()
	if total > 0 {
		m.Accuracy = float64(cm.TP+cm.TN) / float64(total)
	}
	if cm.TP+cm.FP > 0 {
		m.Precision = float64(cm.TP) / float64(cm.TP+cm.FP)
	}
	if cm.TP+cm.FN > 0 {
		m.Recall = float64(cm.TP) / float64(cm.TP+cm.FN)
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
