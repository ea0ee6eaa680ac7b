package clinical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrendWeight(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     TrendDirection
	}{
		{"gain above threshold", 70, 68, TrendIncrease},
		{"small gain is stable", 70, 69.5, TrendStable},
		{"exactly one kg is stable", 70, 69, TrendStable},
		{"loss below threshold", 66, 68, TrendDecrease},
		{"exactly minus one kg is stable", 67, 68, TrendStable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeTrend([]Sample{
				{WeightKg: tc.current, GlucoseMgdl: 90},
				{WeightKg: tc.previous, GlucoseMgdl: 90},
			}, 0)
			assert.Equal(t, tc.want, got.WeightTrend)
		})
	}
}

func TestAnalyzeTrendGlucose(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     TrendDirection
	}{
		{"rise above threshold", 140, 120, TrendIncrease},
		{"small rise is stable", 140, 135, TrendStable},
		{"exactly ten is stable", 130, 120, TrendStable},
		{"drop below threshold", 100, 120, TrendDecrease},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeTrend([]Sample{
				{WeightKg: 70, GlucoseMgdl: tc.current},
				{WeightKg: 70, GlucoseMgdl: tc.previous},
			}, 0)
			assert.Equal(t, tc.want, got.GlucoseTrend)
		})
	}
}

func TestAnalyzeTrendSingleEvaluation(t *testing.T) {
	got := AnalyzeTrend([]Sample{{WeightKg: 70, GlucoseMgdl: 110}}, 0)
	assert.Equal(t, TrendStable, got.WeightTrend)
	assert.Equal(t, TrendStable, got.GlucoseTrend)
}

func TestAnalyzeTrendAdherence(t *testing.T) {
	assert.Equal(t, AdherenceNoPlan, AnalyzeTrend(nil, 0).AdherenceLevel)
	assert.Equal(t, AdherenceGood, AnalyzeTrend(nil, 3).AdherenceLevel)
}

func TestTrendRecommendationAssembly(t *testing.T) {
	t.Run("glucose rise with weight gain yields five entries", func(t *testing.T) {
		got := AnalyzeTrend([]Sample{
			{WeightKg: 72, GlucoseMgdl: 140},
			{WeightKg: 68, GlucoseMgdl: 120},
		}, 1)
		assert.Equal(t, []string{
			"Reforzar el plan bajo en carbohidratos",
			"Incrementar actividad física a 30 min diarios",
			"Revisar horarios de comidas",
			"Ajustar porciones en comidas",
			"Incrementar consumo de vegetales",
		}, got.Recommendations)
	})

	t.Run("glucose drop with weight loss yields four entries", func(t *testing.T) {
		got := AnalyzeTrend([]Sample{
			{WeightKg: 66, GlucoseMgdl: 100},
			{WeightKg: 68, GlucoseMgdl: 120},
		}, 1)
		assert.Equal(t, []string{
			"Continuar con el plan alimenticio actual",
			"Mantener rutina de actividad física",
			"Monitorear para prevenir hipoglucemias",
			"Verificar ingesta calórica adecuada",
		}, got.Recommendations)
	})

	t.Run("stable trends yield the maintain entries", func(t *testing.T) {
		got := AnalyzeTrend(nil, 0)
		assert.Equal(t, []string{
			"Mantener el plan actual",
			"Continuar con monitoreo regular",
			"Considerar variaciones en el menú",
		}, got.Recommendations)
	})
}

func TestFallbackRecommendations(t *testing.T) {
	assert.Equal(t, []string{
		"Continuar con el plan alimenticio actual",
		"Mantener monitoreo regular",
		"Seguir las recomendaciones del nutricionista",
	}, FallbackRecommendations())
}
