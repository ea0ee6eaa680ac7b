package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/models"
	"github.com/nutriia/backend/internal/types"
)

// MealPlanService stores weekly menus and drives AI generation from
// the patient's latest evaluation.
type MealPlanService struct {
	db          *gorm.DB
	evaluations *EvaluationService
	llm         LLMClient
}

func NewMealPlanService(db *gorm.DB, evaluations *EvaluationService, llm LLMClient) *MealPlanService {
	return &MealPlanService{
		db:          db,
		evaluations: evaluations,
		llm:         llm,
	}
}

// List returns the clinician's meal plans, newest first.
func (s *MealPlanService) List(userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// ListByPatient returns the plans for one patient name, newest first.
func (s *MealPlanService) ListByPatient(userID uuid.UUID, patientName string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.Where("user_id = ? AND patient_name = ?", userID, strings.TrimSpace(patientName)).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// Create saves a manually assigned plan. When the request names a
// built-in template and carries no meal data, the template's meals are
// used.
func (s *MealPlanService) Create(userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error) {
	planData := req.PlanData
	menuType := req.MenuType
	if len(planData) == 0 {
		if tpl, ok := TemplateByName(req.MenuType); ok {
			planData = tpl.Meals
		} else {
			planData = DefaultWeeklyMeals()
		}
	}

	week := req.WeekNumber
	if week == 0 {
		week = 1
	}

	plan := models.MealPlan{
		UserID:         userID,
		PatientName:    strings.TrimSpace(req.PatientName),
		EvaluationID:   req.EvaluationID,
		WeekNumber:     week,
		MenuType:       menuType,
		Considerations: req.Considerations,
		PlanData:       planData,
	}

	if err := s.attachPatient(userID, &plan); err != nil {
		return nil, err
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// Generate produces a personalized plan from the patient's evaluation.
// The evaluation is the one named in the request or, when omitted, the
// patient's latest; without any evaluation generation is refused. A
// provider failure surfaces as a GenerationError.
func (s *MealPlanService) Generate(ctx context.Context, userID uuid.UUID, req *types.GenerateMealPlanRequest) (*models.MealPlan, error) {
	if s.llm == nil {
		return nil, &GenerationError{Err: errors.New("AI provider not configured")}
	}

	var eval *models.Evaluation
	var err error
	if req.EvaluationID != nil {
		eval, err = s.evaluations.Get(userID, *req.EvaluationID)
	} else {
		eval, err = s.evaluations.Latest(userID, req.PatientName)
	}
	if err != nil {
		return nil, err
	}

	generated, err := s.llm.GenerateMealPlan(ctx, MealPlanPrompt{
		PatientName:    eval.PatientName,
		Age:            eval.Age,
		WeightKg:       eval.WeightKg,
		HeightCm:       eval.HeightCm,
		BMI:            eval.BMI,
		GlucoseFasting: eval.GlucoseFasting,
		GlucoseStatus:  eval.GlucoseStatus,
		Considerations: req.Considerations,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	plan := models.MealPlan{
		UserID:          userID,
		PatientID:       eval.PatientID,
		PatientName:     eval.PatientName,
		EvaluationID:    &eval.ID,
		WeekNumber:      generated.Week,
		MenuType:        generated.MenuType,
		Considerations:  req.Considerations,
		GeneratedByAI:   true,
		PlanData:        generated.Meals,
		Recommendations: generated.Recommendations,
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// attachPatient links the plan to the patient row when one exists.
// Plans may reference patients that were never formally evaluated, so
// a missing row is not an error.
func (s *MealPlanService) attachPatient(userID uuid.UUID, plan *models.MealPlan) error {
	var patient models.Patient
	err := s.db.Where("user_id = ? AND full_name = ?", userID, plan.PatientName).First(&patient).Error
	if err == nil {
		plan.PatientID = patient.ID
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
