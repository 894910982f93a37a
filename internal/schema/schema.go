package schema

import "math"

// FeatureOrder is the fixed order of feature columns. The trainer fits every
// pipeline against vectors in this order and the server must build request
// vectors in the same order; it is serialized into the model metadata so the
// two sides can be checked against each other.
var FeatureOrder = []string{
	"Pregnancies",
	"Glucose",
	"BloodPressure",
	"SkinThickness",
	"Insulin",
	"BMI",
	"DiabetesPedigreeFunction",
	"Age",
}

// OutcomeColumn is the label column in the training table.
const OutcomeColumn = "Outcome"

// sentinelFields are the features where a raw reading of 0 is physiologically
// implausible and means "not measured". Pregnancies and Age keep 0 literally.
var sentinelFields = map[string]bool{
	"Glucose":       true,
	"BloodPressure": true,
	"SkinThickness": true,
	"Insulin":       true,
	"BMI":           true,
}

// ZeroIsMissing reports whether a raw zero in the named feature should be
// treated as a missing value.
func ZeroIsMissing(name string) bool {
	return sentinelFields[name]
}

// CleanValue applies the zero sentinel rule: for sentinel fields a raw 0
// becomes NaN, everything else passes through unchanged.
func CleanValue(name string, v float64) float64 {
	if v == 0 && sentinelFields[name] {
		return math.NaN()
	}
	return v
}

// NumFeatures is the width of every feature vector.
func NumFeatures() int {
	return len(FeatureOrder)
}
