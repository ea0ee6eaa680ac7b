package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/middleware"
	"github.com/nutriia/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "NutriIA API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires every handler under /api/v1. All routes except
// health and auth sit behind the token middleware. The Redis client
// may be nil, in which case the AI endpoints run unthrottled.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService *service.AuthService, llm service.LLMClient, redisClient *redis.Client) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	var generationLimiter, analysisLimiter gin.HandlerFunc
	if redisClient != nil {
		generationLimiter = middleware.NewGenerationRateLimiter(redisClient).RateLimitMiddleware()
		analysisLimiter = middleware.NewAnalysisRateLimiter(redisClient).RateLimitMiddleware()
	}

	evaluationService := service.NewEvaluationService(db)
	mealPlanService := service.NewMealPlanService(db, evaluationService, llm)
	monitoringService := service.NewMonitoringService(db, llm)

	v1 := router.Group("/api/v1")

	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewEvaluationHandler(evaluationService).RegisterRoutes(protected)
	NewMealPlanHandler(mealPlanService, generationLimiter).RegisterRoutes(protected)
	NewMonitoringHandler(monitoringService, analysisLimiter).RegisterRoutes(protected)
}
