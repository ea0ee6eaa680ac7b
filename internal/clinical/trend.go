package clinical

// TrendDirection describes how an indicator moved between the two most
// recent evaluations.
type TrendDirection string

const (
	TrendIncrease TrendDirection = "aumento"
	TrendDecrease TrendDirection = "descenso"
	TrendStable   TrendDirection = "estable"
)

// Adherence levels. Presence of any assigned meal plan counts as good
// adherence; this is a deliberate proxy carried over from the clinical
// workflow, not a measure of actual dietary compliance.
const (
	AdherenceGood   = "buena"
	AdherenceNoPlan = "sin plan asignado"
)

// Sample holds the two measurements the trend analyzer compares.
type Sample struct {
	WeightKg    float64
	GlucoseMgdl float64
}

// TrendAnalysis is the outcome of comparing a patient's recent history.
type TrendAnalysis struct {
	WeightTrend     TrendDirection `json:"weightTrend"`
	GlucoseTrend    TrendDirection `json:"glucoseTrend"`
	AdherenceLevel  string         `json:"adherenceLevel"`
	Recommendations []string       `json:"recommendations"`
}

const (
	weightTrendThresholdKg    = 1
	glucoseTrendThresholdMgdl = 10
)

// AnalyzeTrend compares the two most recent evaluations (most recent
// first) and derives trend directions, adherence and a rule-based
// recommendation list. With fewer than two evaluations both trends are
// stable. Thresholds are strict: a weight change of exactly 1 kg or a
// glucose change of exactly 10 mg/dL still reads as stable.
func AnalyzeTrend(evals []Sample, mealPlanCount int) TrendAnalysis {
	weightTrend := TrendStable
	glucoseTrend := TrendStable

	if len(evals) >= 2 {
		weightDiff := evals[0].WeightKg - evals[1].WeightKg
		if weightDiff > weightTrendThresholdKg {
			weightTrend = TrendIncrease
		} else if weightDiff < -weightTrendThresholdKg {
			weightTrend = TrendDecrease
		}

		glucoseDiff := evals[0].GlucoseMgdl - evals[1].GlucoseMgdl
		if glucoseDiff > glucoseTrendThresholdMgdl {
			glucoseTrend = TrendIncrease
		} else if glucoseDiff < -glucoseTrendThresholdMgdl {
			glucoseTrend = TrendDecrease
		}
	}

	adherence := AdherenceNoPlan
	if mealPlanCount > 0 {
		adherence = AdherenceGood
	}

	return TrendAnalysis{
		WeightTrend:     weightTrend,
		GlucoseTrend:    glucoseTrend,
		AdherenceLevel:  adherence,
		Recommendations: trendRecommendations(weightTrend, glucoseTrend),
	}
}

// trendRecommendations assembles the rule-based list: three entries for
// the glucose trend, then up to two more for the weight trend. The
// final list holds between three and five entries.
func trendRecommendations(weightTrend, glucoseTrend TrendDirection) []string {
	var recommendations []string

	switch glucoseTrend {
	case TrendIncrease:
		recommendations = append(recommendations,
			"Reforzar el plan bajo en carbohidratos",
			"Incrementar actividad física a 30 min diarios",
			"Revisar horarios de comidas",
		)
	case TrendDecrease:
		recommendations = append(recommendations,
			"Continuar con el plan alimenticio actual",
			"Mantener rutina de actividad física",
			"Monitorear para prevenir hipoglucemias",
		)
	default:
		recommendations = append(recommendations,
			"Mantener el plan actual",
			"Continuar con monitoreo regular",
			"Considerar variaciones en el menú",
		)
	}

	switch weightTrend {
	case TrendIncrease:
		recommendations = append(recommendations,
			"Ajustar porciones en comidas",
			"Incrementar consumo de vegetales",
		)
	case TrendDecrease:
		recommendations = append(recommendations, "Verificar ingesta calórica adecuada")
	}

	return recommendations
}

// FallbackRecommendations is the fixed list returned when the AI-based
// monitoring analysis fails and a basic local analysis takes its place.
func FallbackRecommendations() []string {
	return []string{
		"Continuar con el plan alimenticio actual",
		"Mantener monitoreo regular",
		"Seguir las recomendaciones del nutricionista",
	}
}
