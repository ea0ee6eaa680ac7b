package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evaluation is one clinical assessment of a patient. Rows are
// append-only; the derived columns (bmi, statuses, risks) are always
// recomputed from the measurements by the clinical engine before
// insert and never edited afterwards.
type Evaluation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID   uuid.UUID `gorm:"type:uuid;index" json:"patient_id"`
	PatientName string    `gorm:"size:255;not null;index" json:"patient_name"`

	// Measurements
	Age            int     `json:"age"`
	Gender         string  `gorm:"size:20" json:"gender"`
	WeightKg       float64 `gorm:"not null" json:"weight"`
	HeightCm       float64 `gorm:"not null" json:"height"`
	WaistCm        float64 `json:"waist"`
	GlucoseFasting float64 `gorm:"not null" json:"glucoseFasting"`
	HbA1c          float64 `json:"hba1c"`
	BloodPressure  string  `gorm:"size:50" json:"bloodPressure"`
	Cholesterol    float64 `json:"cholesterol"`
	Triglycerides  float64 `json:"triglycerides"`

	// Free-text clinical context
	MedicalHistory     string `gorm:"type:text" json:"medicalHistory"`
	Medications        string `gorm:"type:text" json:"medications"`
	DietaryHabits      string `gorm:"type:text" json:"dietaryHabits"`
	DietaryPreferences string `gorm:"type:text" json:"dietaryPreferences"`
	Allergies          string `gorm:"type:text" json:"allergies"`
	ActivityLevel      string `gorm:"size:50" json:"activityLevel"`

	// Derived by the clinical engine
	BMI           float64 `json:"bmi"`
	BMIStatus     string  `gorm:"size:50" json:"imcStatus"`
	BMIRisk       string  `gorm:"size:100" json:"imcRisk"`
	GlucoseStatus string  `gorm:"size:50" json:"glucoseStatus"`
	GlucoseRisk   string  `gorm:"size:100" json:"glucoseRisk"`

	// Full assessment bundle (plans, goals) as submitted to the client
	EvaluationData JSONBMap `gorm:"type:jsonb" json:"evaluation_data"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Evaluation) TableName() string {
	return "evaluations"
}
