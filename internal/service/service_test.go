package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriia/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Evaluation{},
		&models.MealPlan{},
		&models.MonitoringRecord{},
	))

	return db
}

// stubLLM lets each test script the provider's behavior.
type stubLLM struct {
	generateFn func(ctx context.Context, prompt MealPlanPrompt) (*GeneratedMealPlan, error)
	analyzeFn  func(ctx context.Context, prompt MonitoringPrompt) (*MonitoringInsights, error)
}

func (s *stubLLM) GenerateMealPlan(ctx context.Context, prompt MealPlanPrompt) (*GeneratedMealPlan, error) {
	return s.generateFn(ctx, prompt)
}

func (s *stubLLM) AnalyzeMonitoring(ctx context.Context, prompt MonitoringPrompt) (*MonitoringInsights, error) {
	return s.analyzeFn(ctx, prompt)
}
