package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/clinical"
	"github.com/nutriia/backend/internal/models"
	"github.com/nutriia/backend/internal/types"
)

// MonitoringService tracks follow-up measurements and produces trend
// analyses. The AI provider enriches an analysis; it never gates one:
// when the provider fails the analysis completes with the local
// fallback recommendations.
type MonitoringService struct {
	db  *gorm.DB
	llm LLMClient
}

func NewMonitoringService(db *gorm.DB, llm LLMClient) *MonitoringService {
	return &MonitoringService{db: db, llm: llm}
}

// List returns the clinician's monitoring records, newest first.
func (s *MonitoringService) List(userID uuid.UUID) ([]models.MonitoringRecord, error) {
	var records []models.MonitoringRecord
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// Patients lists the distinct patient names with evaluations, most
// recently evaluated first.
func (s *MonitoringService) Patients(userID uuid.UUID) ([]types.PatientSummary, error) {
	var patients []types.PatientSummary
	err := s.db.Model(&models.Evaluation{}).
		Select("patient_name AS name, MAX(created_at) AS last_evaluation").
		Where("user_id = ?", userID).
		Group("patient_name").
		Order("last_evaluation DESC").
		Scan(&patients).Error
	return patients, err
}

// SaveTracking stores one raw follow-up measurement set.
func (s *MonitoringService) SaveTracking(userID uuid.UUID, req *types.TrackingRequest) (*models.MonitoringRecord, error) {
	record := models.MonitoringRecord{
		UserID:        userID,
		PatientName:   strings.TrimSpace(req.PatientName),
		WeightKg:      req.TrackingData.WeightKg,
		GlucoseLevel:  req.TrackingData.GlucoseLevel,
		BloodPressure: req.TrackingData.BloodPressure,
		Notes:         req.TrackingData.Notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Analyze builds a trend analysis for the named patient from their
// evaluation history and persists it as a monitoring record. The trend
// directions and adherence come from the local rules; the AI provider
// contributes recommendations and a narrative, replaced by the fixed
// fallback list when it fails.
func (s *MonitoringService) Analyze(ctx context.Context, userID uuid.UUID, patientName string) (*models.MonitoringRecord, *types.MonitoringAnalysis, error) {
	patientName = strings.TrimSpace(patientName)

	var evals []models.Evaluation
	if err := s.db.Where("user_id = ? AND patient_name = ?", userID, patientName).
		Order("created_at DESC").
		Find(&evals).Error; err != nil {
		return nil, nil, err
	}
	if len(evals) == 0 {
		return nil, nil, ErrPatientNotFound
	}

	var plans []models.MealPlan
	if err := s.db.Where("user_id = ? AND patient_name = ?", userID, patientName).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, nil, err
	}

	var trackingCount int64
	if err := s.db.Model(&models.MonitoringRecord{}).
		Where("user_id = ? AND patient_name = ? AND analysis_result IS NULL", userID, patientName).
		Count(&trackingCount).Error; err != nil {
		return nil, nil, err
	}

	samples := make([]clinical.Sample, len(evals))
	for i, e := range evals {
		samples[i] = clinical.Sample{WeightKg: e.WeightKg, GlucoseMgdl: e.GlucoseFasting}
	}
	trend := clinical.AnalyzeTrend(samples, len(plans))

	latest := evals[0]
	analysis := &types.MonitoringAnalysis{
		PatientName:     patientName,
		EvaluationCount: len(evals),
		PlanCount:       len(plans),
		TrackingCount:   int(trackingCount),
		CurrentStatus:   latest.GlucoseStatus,
		CurrentWeight:   latest.WeightKg,
		CurrentGlucose:  latest.GlucoseFasting,
		CurrentBMI:      latest.BMI,
		CurrentPlan:     "Sin plan asignado",
		WeightTrend:     string(trend.WeightTrend),
		GlucoseTrend:    string(trend.GlucoseTrend),
		AdherenceLevel:  trend.AdherenceLevel,
		CreatedDate:     time.Now().Format(time.RFC3339),
	}
	if len(plans) > 0 && plans[0].MenuType != "" {
		analysis.CurrentPlan = plans[0].MenuType
	}

	var insights *MonitoringInsights
	err := errors.New("AI provider not configured")
	if s.llm != nil {
		insights, err = s.llm.AnalyzeMonitoring(ctx, MonitoringPrompt{
			PatientName:     patientName,
			EvaluationCount: len(evals),
			PlanCount:       len(plans),
			GlucoseStatus:   latest.GlucoseStatus,
			WeightKg:        latest.WeightKg,
			GlucoseFasting:  latest.GlucoseFasting,
			BMI:             latest.BMI,
			WeightTrend:     string(trend.WeightTrend),
			GlucoseTrend:    string(trend.GlucoseTrend),
		})
	}
	switch {
	case err != nil:
		log.Printf("monitoring analysis falling back to local rules: %v", err)
		analysis.Recommendations = clinical.FallbackRecommendations()
		analysis.Priority = "media"
	case len(insights.Recommendations) == 0:
		analysis.Recommendations = trend.Recommendations
		analysis.AIAnalysis = insights.Analysis
		analysis.Priority = priorityOrDefault(insights.Priority)
	default:
		analysis.Recommendations = insights.Recommendations
		analysis.AIAnalysis = insights.Analysis
		analysis.Priority = priorityOrDefault(insights.Priority)
	}

	record := models.MonitoringRecord{
		UserID:      userID,
		PatientID:   latest.PatientID,
		PatientName: patientName,
		AnalysisResult: models.JSONBMap{
			"patientName":     analysis.PatientName,
			"evaluationCount": analysis.EvaluationCount,
			"planCount":       analysis.PlanCount,
			"trackingCount":   analysis.TrackingCount,
			"currentStatus":   analysis.CurrentStatus,
			"currentWeight":   analysis.CurrentWeight,
			"currentGlucose":  analysis.CurrentGlucose,
			"currentBMI":      analysis.CurrentBMI,
			"currentPlan":     analysis.CurrentPlan,
			"weightTrend":     analysis.WeightTrend,
			"glucoseTrend":    analysis.GlucoseTrend,
			"adherenceLevel":  analysis.AdherenceLevel,
			"recommendations": analysis.Recommendations,
			"aiAnalysis":      analysis.AIAnalysis,
			"priority":        analysis.Priority,
			"createdDate":     analysis.CreatedDate,
		},
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, nil, err
	}

	return &record, analysis, nil
}

func priorityOrDefault(p string) string {
	switch p {
	case "alta", "media", "baja":
		return p
	default:
		return "media"
	}
}
