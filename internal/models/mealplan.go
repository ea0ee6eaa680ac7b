package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan is a weekly meal structure for a patient, created from a
// canned template, a manual submission or an AI generation call.
// Immutable once created.
type MealPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID      uuid.UUID  `gorm:"type:uuid;index" json:"patient_id"`
	PatientName    string     `gorm:"size:255;not null;index" json:"patient_name"`
	EvaluationID   *uuid.UUID `gorm:"type:uuid" json:"evaluation_id"`
	WeekNumber     int        `gorm:"default:1" json:"week_number"`
	MenuType       string     `gorm:"size:100" json:"menu_type"`
	Considerations string     `gorm:"type:text" json:"considerations"`
	GeneratedByAI  bool       `json:"generated_by_ai"`

	PlanData        WeeklyMeals `gorm:"type:jsonb" json:"plan_data"`
	Recommendations string      `gorm:"type:text" json:"recommendations"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (MealPlan) TableName() string {
	return "meal_plans"
}
