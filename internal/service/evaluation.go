package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/clinical"
	"github.com/nutriia/backend/internal/models"
	"github.com/nutriia/backend/internal/types"
)

// EvaluationService owns the evaluation pipeline: it runs the clinical
// engine on each submission and persists the result together with the
// patient it belongs to.
type EvaluationService struct {
	db *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// Create scores the submitted measurements, resolves the patient
// (creating one on first contact) and stores the evaluation. The
// patient upsert and the evaluation insert commit atomically.
func (s *EvaluationService) Create(userID uuid.UUID, req *types.CreateEvaluationRequest) (*models.Evaluation, error) {
	assessment, err := clinical.Evaluate(req.WeightKg, req.HeightCm, req.GlucoseFasting)
	if err != nil {
		return nil, err
	}

	bundle := assessment.Recommendations

	eval := models.Evaluation{
		UserID:      userID,
		PatientName: strings.TrimSpace(req.PatientName),

		Age:            req.Age,
		Gender:         req.Gender,
		WeightKg:       req.WeightKg,
		HeightCm:       req.HeightCm,
		WaistCm:        req.WaistCm,
		GlucoseFasting: req.GlucoseFasting,
		HbA1c:          req.HbA1c,
		BloodPressure:  req.BloodPressure,
		Cholesterol:    req.Cholesterol,
		Triglycerides:  req.Triglycerides,

		MedicalHistory:     req.MedicalHistory,
		Medications:        req.Medications,
		DietaryHabits:      req.DietaryHabits,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
		ActivityLevel:      req.ActivityLevel,

		BMI:           assessment.BMI,
		BMIStatus:     string(assessment.BMIClassification.Status),
		BMIRisk:       assessment.BMIClassification.Risk,
		GlucoseStatus: string(assessment.GlucoseClassification.Status),
		GlucoseRisk:   assessment.GlucoseClassification.Risk,

		EvaluationData: models.JSONBMap{
			"dietaryPlan":            bundle.DietaryPlan,
			"exerciseRecommendation": bundle.ExerciseRecommendation,
			"monitoringPlan":         bundle.MonitoringPlan,
			"nutritionalGoals":       bundle.NutritionalGoals,
		},
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		patient, err := s.findOrCreatePatient(tx, userID, req)
		if err != nil {
			return err
		}
		eval.PatientID = patient.ID

		return tx.Create(&eval).Error
	})
	if err != nil {
		return nil, err
	}

	return &eval, nil
}

// findOrCreatePatient matches on the full display name within the
// clinician's roster. First contact creates the patient row.
func (s *EvaluationService) findOrCreatePatient(tx *gorm.DB, userID uuid.UUID, req *types.CreateEvaluationRequest) (*models.Patient, error) {
	name := strings.TrimSpace(req.PatientName)

	var patient models.Patient
	err := tx.Where("user_id = ? AND full_name = ?", userID, name).First(&patient).Error
	if err == nil {
		return &patient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	patient = models.Patient{
		UserID:           userID,
		FirstName:        req.FirstName,
		PaternalLastName: req.PaternalLastName,
		MaternalLastName: req.MaternalLastName,
		FullName:         name,
		Age:              req.Age,
		Gender:           req.Gender,
	}
	if err := tx.Create(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// List returns the clinician's evaluations, newest first.
func (s *EvaluationService) List(userID uuid.UUID) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&evals).Error
	return evals, err
}

// ListByPatient returns the evaluations for one patient name, newest
// first.
func (s *EvaluationService) ListByPatient(userID uuid.UUID, patientName string) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.Where("user_id = ? AND patient_name = ?", userID, strings.TrimSpace(patientName)).
		Order("created_at DESC").
		Find(&evals).Error
	return evals, err
}

// Latest returns the most recent evaluation for a patient, or
// ErrEvaluationNotFound when none exists.
func (s *EvaluationService) Latest(userID uuid.UUID, patientName string) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := s.db.Where("user_id = ? AND patient_name = ?", userID, strings.TrimSpace(patientName)).
		Order("created_at DESC").
		First(&eval).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEvaluationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

// Get returns one evaluation by id, scoped to the clinician.
func (s *EvaluationService) Get(userID, evaluationID uuid.UUID) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := s.db.Where("user_id = ? AND id = ?", userID, evaluationID).First(&eval).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEvaluationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

// Stats computes the dashboard counters: total evaluations, today's
// consultations (evaluations plus meal plans created today) and the
// number of distinct patients evaluated.
func (s *EvaluationService) Stats(userID uuid.UUID) (*types.EvaluationStats, error) {
	stats := &types.EvaluationStats{}

	if err := s.db.Model(&models.Evaluation{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalEvaluations).Error; err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)

	var todayEvals int64
	if err := s.db.Model(&models.Evaluation{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay).
		Count(&todayEvals).Error; err != nil {
		return nil, err
	}

	var todayPlans int64
	if err := s.db.Model(&models.MealPlan{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay).
		Count(&todayPlans).Error; err != nil {
		return nil, err
	}
	stats.TodayConsultations = todayEvals + todayPlans

	if err := s.db.Model(&models.Evaluation{}).
		Where("user_id = ?", userID).
		Distinct("patient_name").
		Count(&stats.ActivePatients).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
