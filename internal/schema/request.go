package schema

import "math"

// PredictionRequest is the wire shape of a prediction request. Every field is
// optional; an absent field is treated as a missing measurement, which is not
// the same thing as an explicit 0.
type PredictionRequest struct {
	Pregnancies              *float64 `json:"Pregnancies"`
	Glucose                  *float64 `json:"Glucose"`
	BloodPressure            *float64 `json:"BloodPressure"`
	SkinThickness            *float64 `json:"SkinThickness"`
	Insulin                  *float64 `json:"Insulin"`
	BMI                      *float64 `json:"BMI"`
	DiabetesPedigreeFunction *float64 `json:"DiabetesPedigreeFunction"`
	Age                      *float64 `json:"Age"`
}

// Vector converts the request into a feature vector in FeatureOrder. Absent
// fields map to NaN for every field, sentinel-eligible or not, so the fitted
// imputer fills them from training statistics.
func (r *PredictionRequest) Vector() []float64 {
	fields := []*float64{
		r.Pregnancies,
		r.Glucose,
		r.BloodPressure,
		r.SkinThickness,
		r.Insulin,
		r.BMI,
		r.DiabetesPedigreeFunction,
		r.Age,
	}
	vec := make([]float64, len(fields))
	for i, f := range fields {
		if f == nil {
			vec[i] = math.NaN()
		} else {
			vec[i] = *f
		}
	}
	return vec
}
