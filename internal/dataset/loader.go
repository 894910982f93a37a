package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/diapredict/diapredict/internal/schema"
)

// Dataset holds the cleaned feature matrix and the outcome labels. Rows of X
// follow schema.FeatureOrder regardless of the column order in the source
// file; zero readings in sentinel columns are already replaced with NaN.
type Dataset struct {
	X [][]float64
	Y []int
}

// Load reads the diabetes table from path and applies the zero sentinel rule.
// The header must contain every feature column plus the outcome column; a
// missing column is fatal because the feature contract cannot be satisfied.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	colIndex := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIndex[name] = i
	}
	for _, name := range schema.FeatureOrder {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", name)
		}
	}
	outcomeIdx, ok := colIndex[schema.OutcomeColumn]
	if !ok {
		return nil, fmt.Errorf("dataset missing required column %q", schema.OutcomeColumn)
	}

	ds := &Dataset{
		X: make([][]float64, 0, len(rows)-1),
		Y: make([]int, 0, len(rows)-1),
	}
	for line, rec := range rows[1:] {
		vec := make([]float64, len(schema.FeatureOrder))
		for j, name := range schema.FeatureOrder {
			v, err := strconv.ParseFloat(rec[colIndex[name]], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid value for %s: %w", line+2, name, err)
			}
			vec[j] = schema.CleanValue(name, v)
		}
		label, err := strconv.Atoi(rec[outcomeIdx])
		if err != nil || (label != 0 && label != 1) {
			return nil, fmt.Errorf("row %d: outcome must be 0 or 1, got %q", line+2, rec[outcomeIdx])
		}
		ds.X = append(ds.X, vec)
		ds.Y = append(ds.Y, label)
	}
	return ds, nil
}
