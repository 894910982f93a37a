// Package artifact persists trained pipelines (gob) and the selection
// metadata (JSON) to the model directory, and loads them back for serving.
package artifact

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diapredict/diapredict/internal/classifier"
	"github.com/diapredict/diapredict/internal/evaluate"
	"github.com/diapredict/diapredict/internal/pipeline"
)

// BestModelFile is the stable name the server loads the winner from.
const BestModelFile = "best_model.gob"

// MetadataFile is written last: a reader that sees it can rely on every model
// file it references already existing.
const MetadataFile = "meta.json"

func init() {
	// Concrete classifier types behind the Classifier interface field.
	gob.Register(&classifier.LogisticRegression{})
	gob.Register(&classifier.KNN{})
	gob.Register(&classifier.DecisionTree{})
	gob.Register(&classifier.RandomForest{})
}

// Metadata is the selection record trusted by the serving side. It is written
// once per training run and never mutated.
type Metadata struct {
	FeatureOrder  []string                    `json:"feature_order"`
	BestModelName string                      `json:"best_model_name"`
	ModelNames    map[string]string           `json:"model_names"`
	Models        map[string]evaluate.Metrics `json:"models"`
}

// BestDisplayName resolves the winner's display name.
func (m *Metadata) BestDisplayName() string {
	if name, ok := m.ModelNames[m.BestModelName]; ok {
		return name
	}
	return m.BestModelName
}

// Store reads and writes artifacts under one model directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SavePipeline writes one trained pipeline as <key>.gob.
func (s *Store) SavePipeline(p *pipeline.Pipeline) error {
	return s.writePipeline(p.Key+".gob", p)
}

// SaveBest duplicates the winning pipeline under the stable best-model name.
func (s *Store) SaveBest(p *pipeline.Pipeline) error {
	return s.writePipeline(BestModelFile, p)
}

// SaveMetadata writes the selection record. Callers must save every pipeline
// first so the metadata never references a file that does not exist yet.
func (s *Store) SaveMetadata(meta *Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	path := filepath.Join(s.dir, MetadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

func (s *Store) writePipeline(name string, p *pipeline.Pipeline) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("failed to encode model %s: %w", p.Key, err)
	}
	return nil
}

// LoadMetadata reads the selection record back.
func (s *Store) LoadMetadata() (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("corrupt metadata: %w", err)
	}
	return &meta, nil
}

// LoadBest reads the winning pipeline back.
func (s *Store) LoadBest() (*pipeline.Pipeline, error) {
	return s.loadPipeline(BestModelFile)
}

// LoadPipeline reads a single candidate back by key.
func (s *Store) LoadPipeline(key string) (*pipeline.Pipeline, error) {
	return s.loadPipeline(key + ".gob")
}

func (s *Store) loadPipeline(name string) (*pipeline.Pipeline, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()
	var p pipeline.Pipeline
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("corrupt model file %s: %w", name, err)
	}
	return &p, nil
}
