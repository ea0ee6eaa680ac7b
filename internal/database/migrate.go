package database

import (
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/models"
)

// RunMigrations brings the schema up to date for all persisted
// entities.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Evaluation{},
		&models.MealPlan{},
		&models.MonitoringRecord{},
	)
}
