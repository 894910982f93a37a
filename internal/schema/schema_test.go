package schema_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diapredict/diapredict/internal/schema"
)

func TestCleanValue_SentinelFields(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		value       float64
		wantMissing bool
	}{
		{"glucose zero is missing", "Glucose", 0, true},
		{"blood pressure zero is missing", "BloodPressure", 0, true},
		{"skin thickness zero is missing", "SkinThickness", 0, true},
		{"insulin zero is missing", "Insulin", 0, true},
		{"bmi zero is missing", "BMI", 0, true},
		{"age zero is literal", "Age", 0, false},
		{"pregnancies zero is literal", "Pregnancies", 0, false},
		{"pedigree zero is literal", "DiabetesPedigreeFunction", 0, false},
		{"glucose nonzero is kept", "Glucose", 140, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schema.CleanValue(tt.field, tt.value)
			if tt.wantMissing {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.value, got)
			}
		})
	}
}

func TestPredictionRequest_Vector_Order(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	req := schema.PredictionRequest{
		Pregnancies:              v(2),
		Glucose:                  v(150),
		BloodPressure:            v(70),
		SkinThickness:            v(30),
		Insulin:                  v(90),
		BMI:                      v(32),
		DiabetesPedigreeFunction: v(0.6),
		Age:                      v(45),
	}

	vec := req.Vector()
	require.Len(t, vec, schema.NumFeatures())
	assert.Equal(t, []float64{2, 150, 70, 30, 90, 32, 0.6, 45}, vec)
}

func TestPredictionRequest_Vector_AbsentFieldsAreMissing(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	req := schema.PredictionRequest{
		Glucose: v(150),
		BMI:     v(32),
		Age:     v(45),
	}

	vec := req.Vector()
	require.Len(t, vec, schema.NumFeatures())

	// Absent fields map to NaN whether or not they are zero-sentineled.
	assert.True(t, math.IsNaN(vec[0])) // Pregnancies
	assert.Equal(t, 150.0, vec[1])
	assert.True(t, math.IsNaN(vec[2])) // BloodPressure
	assert.True(t, math.IsNaN(vec[3])) // SkinThickness
	assert.True(t, math.IsNaN(vec[4])) // Insulin
	assert.Equal(t, 32.0, vec[5])
	assert.True(t, math.IsNaN(vec[6])) // DiabetesPedigreeFunction
	assert.Equal(t, 45.0, vec[7])
}

func TestPredictionRequest_Vector_ExplicitZeroIsKept(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	req := schema.PredictionRequest{Pregnancies: v(0), Age: v(30)}

	vec := req.Vector()
	assert.Equal(t, 0.0, vec[0])
	assert.Equal(t, 30.0, vec[7])
}
