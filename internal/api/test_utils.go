package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriia/backend/internal/models"
	"github.com/nutriia/backend/internal/service"
)

// TestEnv holds the pieces handler tests need.
type TestEnv struct {
	DB          *gorm.DB
	AuthService *service.AuthService
	Router      *gin.Engine
}

// SetupTestEnv builds an in-memory database and a fully wired router
// with the given LLM double.
func SetupTestEnv(t *testing.T, llm service.LLMClient) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	authService := service.NewAuthService(db, "test-secret")

	router := gin.New()
	RegisterRoutes(router, db, authService, llm, nil)

	return &TestEnv{
		DB:          db,
		AuthService: authService,
		Router:      router,
	}
}

// RegisterTestUser creates a clinician account and returns its token.
func (env *TestEnv) RegisterTestUser(t *testing.T, email string) string {
	t.Helper()
	_, token, err := env.AuthService.Register("Test Clinician", email, "secret123")
	require.NoError(t, err)
	return token
}

// PerformRequest sends a JSON request through the router.
func (env *TestEnv) PerformRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a response body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
