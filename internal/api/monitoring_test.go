package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriia/backend/internal/clinical"
	"github.com/nutriia/backend/internal/service"
)

func TestAnalyzeEndpointFallsBack(t *testing.T) {
	llm := &fakeLLM{
		analyzeFn: func(ctx context.Context, prompt service.MonitoringPrompt) (*service.MonitoringInsights, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
	env := SetupTestEnv(t, llm)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.PerformRequest(t, http.MethodPost, "/api/v1/monitoring/analyze", token, map[string]interface{}{
		"patientName": "María López",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Analysis struct {
			Recommendations []string `json:"recommendations"`
			Priority        string   `json:"priority"`
			CurrentStatus   string   `json:"currentStatus"`
		} `json:"analysis"`
	}
	DecodeJSON(t, w, &resp)
	assert.Equal(t, clinical.FallbackRecommendations(), resp.Analysis.Recommendations)
	assert.Equal(t, "media", resp.Analysis.Priority)
	assert.Equal(t, "Diabetes", resp.Analysis.CurrentStatus)
}

func TestAnalyzeEndpointUnknownPatient(t *testing.T) {
	env := SetupTestEnv(t, &fakeLLM{})
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/monitoring/analyze", token, map[string]interface{}{
		"patientName": "Nadie",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackingAndPatientsEndpoints(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.PerformRequest(t, http.MethodPost, "/api/v1/monitoring/tracking", token, map[string]interface{}{
		"patientName": "María López",
		"trackingData": map[string]interface{}{
			"weight":       79.2,
			"glucoseLevel": 128,
			"notes":        "Reporta mejor apego al plan",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.PerformRequest(t, http.MethodGet, "/api/v1/monitoring/patients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patients []struct {
		Name string `json:"name"`
	}
	DecodeJSON(t, w, &patients)
	require.Len(t, patients, 1)
	assert.Equal(t, "María López", patients[0].Name)

	w = env.PerformRequest(t, http.MethodGet, "/api/v1/monitoring", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]interface{}
	DecodeJSON(t, w, &records)
	assert.Len(t, records, 1)
}
