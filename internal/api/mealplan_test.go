package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriia/backend/internal/service"
)

type fakeLLM struct {
	generateFn func(ctx context.Context, prompt service.MealPlanPrompt) (*service.GeneratedMealPlan, error)
	analyzeFn  func(ctx context.Context, prompt service.MonitoringPrompt) (*service.MonitoringInsights, error)
}

func (f *fakeLLM) GenerateMealPlan(ctx context.Context, prompt service.MealPlanPrompt) (*service.GeneratedMealPlan, error) {
	return f.generateFn(ctx, prompt)
}

func (f *fakeLLM) AnalyzeMonitoring(ctx context.Context, prompt service.MonitoringPrompt) (*service.MonitoringInsights, error) {
	return f.analyzeFn(ctx, prompt)
}

func TestCreateMealPlanEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/meal-plans", token, map[string]interface{}{
		"patientName": "María López",
		"menuType":    "Plan Mediterráneo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var plan struct {
		MenuType string `json:"menu_type"`
		PlanData map[string]struct {
			Desayuno []string `json:"desayuno"`
		} `json:"plan_data"`
	}
	DecodeJSON(t, w, &plan)
	assert.Equal(t, "Plan Mediterráneo", plan.MenuType)
	require.Contains(t, plan.PlanData, "lunes")
	assert.Equal(t, "Avena con frutas y nueces", plan.PlanData["lunes"].Desayuno[0])
}

func TestMealPlanTemplatesEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodGet, "/api/v1/meal-plans/templates", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var templates []struct {
		Name string `json:"name"`
	}
	DecodeJSON(t, w, &templates)
	require.Len(t, templates, 3)
	assert.Equal(t, "Plan Mediterráneo", templates[0].Name)
}

func TestGenerateMealPlanEndpoint(t *testing.T) {
	llm := &fakeLLM{
		generateFn: func(ctx context.Context, prompt service.MealPlanPrompt) (*service.GeneratedMealPlan, error) {
			return &service.GeneratedMealPlan{
				Week:            1,
				MenuType:        "Plan Personalizado",
				Meals:           service.DefaultWeeklyMeals(),
				Recommendations: "Evitar azúcares simples",
			}, nil
		},
	}
	env := SetupTestEnv(t, llm)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.PerformRequest(t, http.MethodPost, "/api/v1/meal-plans/generate", token, map[string]interface{}{
		"patientName": "María López",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var plan struct {
		GeneratedByAI   bool   `json:"generated_by_ai"`
		Recommendations string `json:"recommendations"`
	}
	DecodeJSON(t, w, &plan)
	assert.True(t, plan.GeneratedByAI)
	assert.Equal(t, "Evitar azúcares simples", plan.Recommendations)
}

func TestGenerateMealPlanWithoutEvaluation(t *testing.T) {
	env := SetupTestEnv(t, &fakeLLM{})
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/meal-plans/generate", token, map[string]interface{}{
		"patientName": "Nadie",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateMealPlanProviderFailure(t *testing.T) {
	llm := &fakeLLM{
		generateFn: func(ctx context.Context, prompt service.MealPlanPrompt) (*service.GeneratedMealPlan, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	env := SetupTestEnv(t, llm)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.PerformRequest(t, http.MethodPost, "/api/v1/meal-plans/generate", token, map[string]interface{}{
		"patientName": "María López",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	DecodeJSON(t, w, &resp)
	assert.Equal(t, "error al generar plan", resp.Error)
	assert.Equal(t, "upstream timeout", resp.Details)
}
