package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diapredict/diapredict/internal/dataset"
)

const header = "Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction,Age,Outcome"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diabetes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesZeroSentinel(t *testing.T) {
	path := writeCSV(t, header+"\n"+
		"0,0,0,0,0,0,0.5,0,1\n"+
		"2,120,70,25,100,30.5,0.3,40,0\n")

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	require.Len(t, ds.X, 2)

	row := ds.X[0]
	assert.Equal(t, 0.0, row[0], "pregnancies keeps zero")
	assert.True(t, math.IsNaN(row[1]), "glucose zero becomes missing")
	assert.True(t, math.IsNaN(row[2]), "blood pressure zero becomes missing")
	assert.True(t, math.IsNaN(row[3]), "skin thickness zero becomes missing")
	assert.True(t, math.IsNaN(row[4]), "insulin zero becomes missing")
	assert.True(t, math.IsNaN(row[5]), "bmi zero becomes missing")
	assert.Equal(t, 0.5, row[6])
	assert.Equal(t, 0.0, row[7], "age keeps zero")
	assert.Equal(t, 1, ds.Y[0])

	// A fully observed row passes through untouched.
	assert.Equal(t, []float64{2, 120, 70, 25, 100, 30.5, 0.3, 40}, ds.X[1])
	assert.Equal(t, 0, ds.Y[1])
}

func TestLoad_ColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, "Outcome,Age,Glucose,Pregnancies,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction\n"+
		"1,45,150,2,70,30,90,32,0.6\n")

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 150, 70, 30, 90, 32, 0.6, 45}, ds.X[0])
	assert.Equal(t, 1, ds.Y[0])
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errLike string
	}{
		{
			name:    "missing outcome column",
			content: "Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction,Age\n1,2,3,4,5,6,7,8\n",
			errLike: "Outcome",
		},
		{
			name:    "missing feature column",
			content: "Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,Age,Outcome\n1,2,3,4,5,6,7,0\n",
			errLike: "DiabetesPedigreeFunction",
		},
		{
			name:    "non-numeric feature",
			content: header + "\n1,abc,3,4,5,6,7,8,0\n",
			errLike: "invalid value",
		},
		{
			name:    "non-binary outcome",
			content: header + "\n1,2,3,4,5,6,7,8,2\n",
			errLike: "outcome",
		},
		{
			name:    "no data rows",
			content: header + "\n",
			errLike: "no data rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			_, err := dataset.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errLike)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
