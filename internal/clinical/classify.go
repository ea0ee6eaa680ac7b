package clinical

// BMIStatus is the ordinal BMI category assigned to an evaluation.
type BMIStatus string

const (
	BMIUnderweight BMIStatus = "Bajo peso"
	BMINormal      BMIStatus = "Peso normal"
	BMIOverweight  BMIStatus = "Sobrepeso"
	BMIObesity     BMIStatus = "Obesidad"
)

// GlucoseStatus is the ordinal fasting-glucose category.
type GlucoseStatus string

const (
	GlucoseNormal      GlucoseStatus = "Normoglucemia"
	GlucosePrediabetes GlucoseStatus = "Prediabetes"
	GlucoseDiabetes    GlucoseStatus = "Diabetes"
)

// BMIClassification pairs a BMI category with its clinical risk text.
type BMIClassification struct {
	Status BMIStatus `json:"imcStatus"`
	Risk   string    `json:"imcRisk"`
}

// GlucoseClassification pairs a glucose category with its risk text.
type GlucoseClassification struct {
	Status GlucoseStatus `json:"glucoseStatus"`
	Risk   string        `json:"glucoseRisk"`
}

// ClassifyBMI maps a BMI value to its category. Ranges are half-open
// with an exclusive upper bound: [18.5, 25) is normal, [25, 30) is
// overweight. Classification is done on the unrounded BMI so boundary
// values are never misfiled by display rounding.
func ClassifyBMI(bmi float64) BMIClassification {
	switch {
	case bmi < 18.5:
		return BMIClassification{Status: BMIUnderweight, Risk: "Riesgo de desnutrición"}
	case bmi < 25:
		return BMIClassification{Status: BMINormal, Risk: "Peso saludable"}
	case bmi < 30:
		return BMIClassification{Status: BMIOverweight, Risk: "Riesgo moderado"}
	default:
		return BMIClassification{Status: BMIObesity, Risk: "Riesgo alto"}
	}
}

// ClassifyGlucose maps a fasting glucose value in mg/dL to its
// category: <100 normal, [100, 126) prediabetes, >=126 diabetes.
func ClassifyGlucose(mgdl float64) GlucoseClassification {
	switch {
	case mgdl < 100:
		return GlucoseClassification{Status: GlucoseNormal, Risk: "Control glucémico óptimo"}
	case mgdl < 126:
		return GlucoseClassification{Status: GlucosePrediabetes, Risk: "Riesgo elevado de desarrollar diabetes tipo 2"}
	default:
		return GlucoseClassification{Status: GlucoseDiabetes, Risk: "Requiere control metabólico estricto"}
	}
}

// Assessment is the full derived result of a nutritional evaluation.
type Assessment struct {
	BMI                   float64               `json:"imc"`
	BMIClassification     BMIClassification     `json:"imcClassification"`
	GlucoseClassification GlucoseClassification `json:"glucoseClassification"`
	Recommendations       RecommendationBundle  `json:"recommendations"`
}

// Evaluate runs the full pipeline: raw measurements to BMI, both
// classifications and the recommendation bundle for the glucose
// category. BMI is returned rounded to two decimals; classification
// uses the unrounded value.
func Evaluate(weightKg, heightCm, glucoseMgdl float64) (Assessment, error) {
	bmi, err := ComputeBMI(weightKg, heightCm)
	if err != nil {
		return Assessment{}, err
	}

	glucose := ClassifyGlucose(glucoseMgdl)
	return Assessment{
		BMI:                   Round2(bmi),
		BMIClassification:     ClassifyBMI(bmi),
		GlucoseClassification: glucose,
		Recommendations:       Recommendations(glucose.Status),
	}, nil
}
