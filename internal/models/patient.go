package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is the normalized patient identity. Records are grouped by
// the patient's uuid; FullName is a mutable attribute kept in sync for
// the legacy name-based lookups the clinical screens still use.
type Patient struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FirstName        string         `gorm:"size:100" json:"first_name"`
	PaternalLastName string         `gorm:"size:100" json:"paternal_last_name"`
	MaternalLastName string         `gorm:"size:100" json:"maternal_last_name"`
	FullName         string         `gorm:"size:255;not null;index:idx_patients_user_full_name" json:"full_name"`
	Age              int            `json:"age"`
	Gender           string         `gorm:"size:20" json:"gender"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Patient) TableName() string {
	return "patients"
}
