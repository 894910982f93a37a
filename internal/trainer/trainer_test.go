package trainer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diapredict/diapredict/internal/artifact"
	"github.com/diapredict/diapredict/internal/pipeline"
	"github.com/diapredict/diapredict/internal/schema"
	"github.com/diapredict/diapredict/internal/trainer"
	"github.com/diapredict/diapredict/pkg/config"
)

// writeDataset produces a well-separated table: positives run high on
// glucose, insulin, BMI and age, with a few sentinel zeros sprinkled in.
func writeDataset(t *testing.T, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction,Age,Outcome\n")
	for i := 0; i < rows; i++ {
		if i%2 == 0 {
			glucose := 85 + i%20
			if i%10 == 0 {
				glucose = 0 // sentinel: not measured
			}
			fmt.Fprintf(&sb, "%d,%d,%d,%d,%d,%.1f,%.2f,%d,0\n",
				i%4, glucose, 64+i%10, 20+i%8, 70+i%30, 23.0+float64(i%6), 0.2, 25+i%10)
		} else {
			fmt.Fprintf(&sb, "%d,%d,%d,%d,%d,%.1f,%.2f,%d,1\n",
				3+i%4, 160+i%30, 82+i%10, 36+i%8, 190+i%40, 35.0+float64(i%6), 0.8, 48+i%12)
		}
	}
	path := filepath.Join(t.TempDir(), "diabetes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		App:   config.AppConfig{Name: "test", Mode: "test", LogLevel: "error"},
		Model: config.ModelConfig{Dir: filepath.Join(t.TempDir(), "model")},
		Training: config.TrainingConfig{
			DataPath:     writeDataset(t, 80),
			TestFraction: 0.2,
			Seed:         42,
		},
	}
}

func TestRun_ProducesAllArtifacts(t *testing.T) {
	cfg := testConfig(t)

	result, err := trainer.Run(cfg)
	require.NoError(t, err)
	require.Len(t, result.Metrics, 4)

	for _, key := range []string{"lr", "knn", "dt", "rf"} {
		assert.FileExists(t, filepath.Join(cfg.Model.Dir, key+".gob"))

		m := result.Metrics[key]
		assert.Equal(t, 16, m.ConfusionMatrix.Total(), "confusion counts sum to test size for %s", key)
		recomputed := float64(m.ConfusionMatrix.TP+m.ConfusionMatrix.TN) / float64(m.ConfusionMatrix.Total())
		assert.Equal(t, recomputed, m.Accuracy)
	}
	assert.FileExists(t, filepath.Join(cfg.Model.Dir, artifact.BestModelFile))
	assert.FileExists(t, filepath.Join(cfg.Model.Dir, artifact.MetadataFile))
	assert.Equal(t, pipeline.DisplayNames[result.BestKey], result.BestDisplay)
}

func TestRun_MetadataMatchesTrainingRun(t *testing.T) {
	cfg := testConfig(t)

	result, err := trainer.Run(cfg)
	require.NoError(t, err)

	meta, err := artifact.NewStore(cfg.Model.Dir).LoadMetadata()
	require.NoError(t, err)

	assert.Equal(t, result.BestKey, meta.BestModelName)
	assert.Equal(t, schema.FeatureOrder, meta.FeatureOrder)
	assert.Equal(t, pipeline.DisplayNames, meta.ModelNames)
	assert.Equal(t, result.Metrics, meta.Models)
}

func TestRun_DeterministicWinner(t *testing.T) {
	cfg := testConfig(t)

	first, err := trainer.Run(cfg)
	require.NoError(t, err)
	second, err := trainer.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.BestKey, second.BestKey)
	assert.Equal(t, first.Metrics, second.Metrics)
}

func TestRun_MissingDataIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Training.DataPath = filepath.Join(t.TempDir(), "absent.csv")

	_, err := trainer.Run(cfg)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(cfg.Model.Dir, artifact.MetadataFile))
}
