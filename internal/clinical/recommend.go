package clinical

// RecommendationBundle is the structured guidance attached to an
// evaluation. The content is fixed clinical narrative keyed by glucose
// category; the BMI category does not alter it.
type RecommendationBundle struct {
	DietaryPlan            string   `json:"dietaryPlan"`
	ExerciseRecommendation string   `json:"exerciseRecommendation"`
	MonitoringPlan         string   `json:"monitoringPlan"`
	NutritionalGoals       []string `json:"nutritionalGoals"`
}

var recommendationTable = map[GlucoseStatus]RecommendationBundle{
	GlucoseNormal: {
		DietaryPlan:            "Plan alimenticio preventivo balanceado con 50-55% carbohidratos complejos, 15-20% proteínas de alto valor biológico y 25-30% grasas saludables. Énfasis en fibra soluble e insoluble (25-30g/día), consumo regular de frutas y verduras (5 porciones/día).",
		ExerciseRecommendation: "Actividad física aeróbica moderada 150 minutos/semana distribuidos en 5 días. Combinar con ejercicios de resistencia 2-3 veces/semana. Caminar, nadar, ciclismo son excelentes opciones.",
		MonitoringPlan:         "Control de glucosa en ayunas cada 6 meses. Revisión de peso mensual. Evaluación nutricional trimestral.",
		NutritionalGoals: []string{
			"Mantener peso saludable dentro del rango de IMC 18.5-24.9",
			"Consumir al menos 5 porciones de frutas y verduras al día",
			"Limitar azúcares añadidos a menos del 10% de calorías totales",
			"Realizar 3 comidas principales y 2 colaciones",
			"Hidratación adecuada: 2-2.5 litros de agua al día",
		},
	},
	GlucosePrediabetes: {
		DietaryPlan:            "Plan alimenticio hipoglucémico con 40-45% carbohidratos de bajo índice glucémico, 20-25% proteínas magras y 30-35% grasas monoinsaturadas. Reducir carbohidratos simples, eliminar azúcares refinados. Aumentar consumo de fibra a 30-35g/día. Porciones controladas con método del plato (1/2 verduras, 1/4 proteína, 1/4 carbohidratos complejos).",
		ExerciseRecommendation: "Programa estructurado de ejercicio: 200 minutos/semana de actividad aeróbica moderada-vigorosa. Ejercicios de resistencia 3 veces/semana para mejorar sensibilidad a la insulina. Caminar 10,000 pasos diarios como mínimo.",
		MonitoringPlan:         "Monitoreo de glucosa en ayunas mensual. Control de HbA1c cada 3 meses. Evaluación antropométrica mensual. Consulta nutricional cada 4-6 semanas con ajustes personalizados.",
		NutritionalGoals: []string{
			"Reducir peso corporal 5-10% en los próximos 3-6 meses",
			"Mantener glucosa en ayunas <100 mg/dL",
			"Reducir circunferencia de cintura (Hombres <90cm, Mujeres <80cm)",
			"Eliminar bebidas azucaradas y jugos comerciales",
			"Incorporar alimentos de bajo índice glucémico en cada comida",
			"Realizar actividad física 5-6 días a la semana",
		},
	},
	GlucoseDiabetes: {
		DietaryPlan:            "Plan alimenticio especializado para diabetes con 35-40% carbohidratos complejos de muy bajo índice glucémico, 25-30% proteínas magras y 30-35% grasas saludables (omega-3, monoinsaturadas). Método de conteo de carbohidratos: 45-60g por comida principal. Timing nutricional: comer cada 3-4 horas. Evitar ayunos prolongados. Aumentar fibra a 35-40g/día. Suplementación con vitaminas B, C, D y magnesio según necesidad.",
		ExerciseRecommendation: "Programa de ejercicio supervisado: 150-300 minutos/semana de actividad aeróbica moderada. Entrenamiento de fuerza 3 veces/semana con peso moderado. Ejercicios de flexibilidad diarios. Monitorear glucosa antes y después del ejercicio. Evitar ejercicio si glucosa >250 mg/dL.",
		MonitoringPlan:         "Automonitoreo de glucosa capilar 3-4 veces/día (ayunas, pre y postprandial). HbA1c cada 3 meses con meta <7%. Control de presión arterial semanal. Examen de lípidos cada 3 meses. Consulta con nutriólogo cada 3-4 semanas. Revisión oftalmológica y podológica anual.",
		NutritionalGoals: []string{
			"Mantener glucosa en ayunas entre 80-130 mg/dL",
			"Glucosa postprandial (2hrs) <180 mg/dL",
			"HbA1c <7% (individualizado según paciente)",
			"Reducir peso 7-10% si hay sobrepeso u obesidad",
			"Presión arterial <130/80 mmHg",
			"Colesterol LDL <100 mg/dL",
			"Triglicéridos <150 mg/dL",
			"Adherencia 100% al plan nutricional y medicación",
		},
	},
}

// Recommendations returns the fixed guidance bundle for a glucose
// category. The classifier is total, so every status has an entry.
func Recommendations(status GlucoseStatus) RecommendationBundle {
	return recommendationTable[status]
}
