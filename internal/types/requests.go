package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutriia/backend/internal/models"
)

// RegisterRequest represents the request body for clinician registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// CreateEvaluationRequest represents the request body for submitting a
// nutritional evaluation. Weight, height and fasting glucose feed the
// clinical engine; everything else is context recorded verbatim.
type CreateEvaluationRequest struct {
	PatientName      string `json:"patientName" binding:"required"`
	FirstName        string `json:"firstName"`
	PaternalLastName string `json:"paternalLastName"`
	MaternalLastName string `json:"maternalLastName"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`

	WeightKg       float64 `json:"weight" binding:"required"`
	HeightCm       float64 `json:"height" binding:"required"`
	WaistCm        float64 `json:"waist"`
	GlucoseFasting float64 `json:"glucoseFasting" binding:"required"`
	HbA1c          float64 `json:"hba1c"`
	BloodPressure  string  `json:"bloodPressure"`
	Cholesterol    float64 `json:"cholesterol"`
	Triglycerides  float64 `json:"triglycerides"`

	MedicalHistory     string `json:"medicalHistory"`
	Medications        string `json:"medications"`
	DietaryHabits      string `json:"dietaryHabits"`
	DietaryPreferences string `json:"dietaryPreferences"`
	Allergies          string `json:"allergies"`
	ActivityLevel      string `json:"activityLevel"`
}

// EvaluationStats summarizes a clinician's activity for the dashboard
type EvaluationStats struct {
	TotalEvaluations   int64 `json:"totalEvaluations"`
	TodayConsultations int64 `json:"todayConsultations"`
	ActivePatients     int64 `json:"activePatients"`
}

// CreateMealPlanRequest represents the request body for saving a meal
// plan manually, either from a canned template or a fully specified
// weekly structure.
type CreateMealPlanRequest struct {
	PatientName    string             `json:"patientName" binding:"required"`
	EvaluationID   *uuid.UUID         `json:"evaluationId"`
	WeekNumber     int                `json:"weekNumber"`
	MenuType       string             `json:"menuType"`
	PlanData       models.WeeklyMeals `json:"planData"`
	Considerations string             `json:"considerations"`
}

// GenerateMealPlanRequest represents the request body for AI meal plan
// generation
type GenerateMealPlanRequest struct {
	PatientName    string     `json:"patientName" binding:"required"`
	EvaluationID   *uuid.UUID `json:"evaluationId"`
	Considerations string     `json:"considerations"`
}

// AnalyzeRequest represents the request body for monitoring analysis
type AnalyzeRequest struct {
	PatientName string `json:"patientName" binding:"required"`
}

// TrackingData holds one raw follow-up measurement set
type TrackingData struct {
	WeightKg      float64 `json:"weight"`
	GlucoseLevel  float64 `json:"glucoseLevel"`
	BloodPressure string  `json:"bloodPressure"`
	Notes         string  `json:"notes"`
}

// TrackingRequest represents the request body for saving a follow-up
// record
type TrackingRequest struct {
	PatientName  string       `json:"patientName" binding:"required"`
	TrackingData TrackingData `json:"trackingData"`
}

// PatientSummary is one row of the monitoring patients listing
type PatientSummary struct {
	Name           string    `json:"name"`
	LastEvaluation time.Time `json:"lastEvaluation"`
}

// MonitoringAnalysis is the document produced by a monitoring analysis
// run, persisted on the monitoring record and returned to the caller.
type MonitoringAnalysis struct {
	PatientName     string   `json:"patientName"`
	EvaluationCount int      `json:"evaluationCount"`
	PlanCount       int      `json:"planCount"`
	TrackingCount   int      `json:"trackingCount"`
	CurrentStatus   string   `json:"currentStatus"`
	CurrentWeight   float64  `json:"currentWeight"`
	CurrentGlucose  float64  `json:"currentGlucose"`
	CurrentBMI      float64  `json:"currentBMI"`
	CurrentPlan     string   `json:"currentPlan"`
	WeightTrend     string   `json:"weightTrend"`
	GlucoseTrend    string   `json:"glucoseTrend"`
	AdherenceLevel  string   `json:"adherenceLevel"`
	Recommendations []string `json:"recommendations"`
	AIAnalysis      string   `json:"aiAnalysis,omitempty"`
	Priority        string   `json:"priority,omitempty"`
	CreatedDate     string   `json:"createdDate"`
}
