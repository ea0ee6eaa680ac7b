package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonitoringRecord is either a raw tracking snapshot (weight, glucose,
// notes taken between consultations) or a saved trend analysis, in
// which case AnalysisResult carries the full analysis document.
type MonitoringRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID   uuid.UUID `gorm:"type:uuid;index" json:"patient_id"`
	PatientName string    `gorm:"size:255;not null;index" json:"patient_name"`

	WeightKg      float64 `json:"weight"`
	GlucoseLevel  float64 `json:"glucose_level"`
	BloodPressure string  `gorm:"size:50" json:"blood_pressure"`
	Notes         string  `gorm:"type:text" json:"notes"`

	AnalysisResult JSONBMap `gorm:"type:jsonb" json:"analysis_result"`
}

func (m *MonitoringRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (MonitoringRecord) TableName() string {
	return "monitoring"
}
