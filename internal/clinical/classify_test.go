package clinical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		bmi    float64
		status BMIStatus
		risk   string
	}{
		{10, BMIUnderweight, "Riesgo de desnutrición"},
		{18.49, BMIUnderweight, "Riesgo de desnutrición"},
		{18.5, BMINormal, "Peso saludable"},
		{24.99, BMINormal, "Peso saludable"},
		{25, BMIOverweight, "Riesgo moderado"},
		{29.99, BMIOverweight, "Riesgo moderado"},
		{30, BMIObesity, "Riesgo alto"},
		{45, BMIObesity, "Riesgo alto"},
	}

	for _, tc := range cases {
		got := ClassifyBMI(tc.bmi)
		assert.Equal(t, tc.status, got.Status, "bmi=%v", tc.bmi)
		assert.Equal(t, tc.risk, got.Risk, "bmi=%v", tc.bmi)
	}
}

func TestClassifyGlucose(t *testing.T) {
	cases := []struct {
		mgdl   float64
		status GlucoseStatus
	}{
		{0, GlucoseNormal},
		{85, GlucoseNormal},
		{99.9, GlucoseNormal},
		{100, GlucosePrediabetes},
		{125.9, GlucosePrediabetes},
		{126, GlucoseDiabetes},
		{300, GlucoseDiabetes},
	}

	for _, tc := range cases {
		got := ClassifyGlucose(tc.mgdl)
		assert.Equal(t, tc.status, got.Status, "glucose=%v", tc.mgdl)
	}
}

func TestClassifyGlucoseRiskText(t *testing.T) {
	assert.Equal(t, "Control glucémico óptimo", ClassifyGlucose(90).Risk)
	assert.Equal(t, "Riesgo elevado de desarrollar diabetes tipo 2", ClassifyGlucose(110).Risk)
	assert.Equal(t, "Requiere control metabólico estricto", ClassifyGlucose(140).Risk)
}

func TestEvaluate(t *testing.T) {
	t.Run("composes the full pipeline", func(t *testing.T) {
		got, err := Evaluate(80, 170, 135)
		require.NoError(t, err)

		assert.Equal(t, 27.68, got.BMI)
		assert.Equal(t, BMIOverweight, got.BMIClassification.Status)
		assert.Equal(t, GlucoseDiabetes, got.GlucoseClassification.Status)
		assert.Equal(t, Recommendations(GlucoseDiabetes), got.Recommendations)
	})

	t.Run("classifies on the unrounded BMI", func(t *testing.T) {
		// 81.63 kg at 170 cm is 28.2456...; rounding before
		// classification would not change the category, but a value
		// rounding up across a boundary must not be reclassified.
		// 72.24 kg at 170 cm gives 24.9965 -> Peso normal even though
		// it rounds to 25.00.
		got, err := Evaluate(72.24, 170, 90)
		require.NoError(t, err)
		assert.Equal(t, BMINormal, got.BMIClassification.Status)
		assert.Equal(t, 25.0, got.BMI)
	})

	t.Run("propagates invalid measurements", func(t *testing.T) {
		_, err := Evaluate(0, 170, 90)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	})
}
