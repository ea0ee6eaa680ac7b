// Package clinical implements the deterministic rule engine behind
// nutritional evaluations: BMI computation, BMI and glycemic
// classification, recommendation bundles and patient trend analysis.
package clinical

import (
	"errors"
	"math"
)

// ErrInvalidMeasurement is returned when an anthropometric input is
// zero or negative.
var ErrInvalidMeasurement = errors.New("invalid measurement: weight and height must be positive")

// ComputeBMI calculates the body mass index from weight in kilograms
// and height in centimeters. The returned value is unrounded; callers
// that display or store it should pass it through Round2.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}

	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// Round2 rounds a value to two decimal places for display and storage.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
