package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluationBody(patient string, weight, height, glucose float64) map[string]interface{} {
	return map[string]interface{}{
		"patientName":    patient,
		"age":            45,
		"weight":         weight,
		"height":         height,
		"glucoseFasting": glucose,
	}
}

func TestCreateEvaluationEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		BMI           float64 `json:"bmi"`
		BMIStatus     string  `json:"imcStatus"`
		GlucoseStatus string  `json:"glucoseStatus"`
	}
	DecodeJSON(t, w, &resp)
	assert.InDelta(t, 27.68, resp.BMI, 0.001)
	assert.Equal(t, "Sobrepeso", resp.BMIStatus)
	assert.Equal(t, "Diabetes", resp.GlucoseStatus)
}

func TestCreateEvaluationValidation(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	// Missing required measurement.
	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token, map[string]interface{}{
		"patientName": "María López",
		"weight":      80,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative height passes binding but fails the clinical engine.
	w = env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, -170, 135))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEvaluationsEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")
	otherToken := env.RegisterTestUser(t, "otro@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
		evaluationBody("María López", 80, 170, 135))
	require.Equal(t, http.StatusCreated, w.Code)

	var list []map[string]interface{}
	w = env.PerformRequest(t, http.MethodGet, "/api/v1/evaluations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	DecodeJSON(t, w, &list)
	assert.Len(t, list, 1)

	// Other clinicians never see the evaluation.
	w = env.PerformRequest(t, http.MethodGet, "/api/v1/evaluations", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	DecodeJSON(t, w, &list)
	assert.Empty(t, list)

	w = env.PerformRequest(t, http.MethodGet, "/api/v1/evaluations/patient/"+url.PathEscape("María López"), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	DecodeJSON(t, w, &list)
	assert.Len(t, list, 1)
}

func TestEvaluationStatsEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	token := env.RegisterTestUser(t, "garcia@clinic.mx")

	for _, patient := range []string{"María López", "Juan Pérez"} {
		w := env.PerformRequest(t, http.MethodPost, "/api/v1/evaluations", token,
			evaluationBody(patient, 80, 170, 95))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.PerformRequest(t, http.MethodGet, "/api/v1/evaluations/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalEvaluations   int `json:"totalEvaluations"`
		TodayConsultations int `json:"todayConsultations"`
		ActivePatients     int `json:"activePatients"`
	}
	DecodeJSON(t, w, &stats)
	assert.Equal(t, 2, stats.TotalEvaluations)
	assert.Equal(t, 2, stats.TodayConsultations)
	assert.Equal(t, 2, stats.ActivePatients)
}
