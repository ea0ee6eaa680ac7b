package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)

	w := env.PerformRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)

	body := map[string]string{
		"name":     "Dra. García",
		"email":    "garcia@clinic.mx",
		"password": "secret123",
	}

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	DecodeJSON(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "garcia@clinic.mx", resp.User.Email)

	// Duplicate email is rejected.
	w = env.PerformRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := SetupTestEnv(t, nil)
	env.RegisterTestUser(t, "garcia@clinic.mx")

	w := env.PerformRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "garcia@clinic.mx",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.PerformRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "garcia@clinic.mx",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := SetupTestEnv(t, nil)

	w := env.PerformRequest(t, http.MethodGet, "/api/v1/evaluations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.PerformRequest(t, http.MethodGet, "/api/v1/meal-plans", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
