package service

import (
	"context"

	"github.com/nutriia/backend/internal/models"
)

// MealPlanPrompt carries the patient context embedded into the meal
// plan generation prompt.
type MealPlanPrompt struct {
	PatientName    string
	Age            int
	WeightKg       float64
	HeightCm       float64
	BMI            float64
	GlucoseFasting float64
	GlucoseStatus  string
	Considerations string
}

// GeneratedMealPlan is the structured plan parsed out of the model
// response.
type GeneratedMealPlan struct {
	Week            int                `json:"week"`
	MenuType        string             `json:"menuType"`
	Description     string             `json:"description"`
	Meals           models.WeeklyMeals `json:"meals"`
	Recommendations string             `json:"recommendations"`
}

// MonitoringPrompt carries the patient history summary embedded into
// the monitoring analysis prompt.
type MonitoringPrompt struct {
	PatientName     string
	EvaluationCount int
	PlanCount       int
	GlucoseStatus   string
	WeightKg        float64
	GlucoseFasting  float64
	BMI             float64
	WeightTrend     string
	GlucoseTrend    string
}

// MonitoringInsights is the structured analysis parsed out of the
// model response.
type MonitoringInsights struct {
	Recommendations []string `json:"recommendations"`
	Analysis        string   `json:"analysis"`
	Priority        string   `json:"priority"`
}

// LLMClient abstracts the structured-generation capability of the LLM
// provider so handlers and services can be tested with a double.
type LLMClient interface {
	GenerateMealPlan(ctx context.Context, prompt MealPlanPrompt) (*GeneratedMealPlan, error)
	AnalyzeMonitoring(ctx context.Context, prompt MonitoringPrompt) (*MonitoringInsights, error)
}
