package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriia/backend/internal/api"
	"github.com/nutriia/backend/internal/middleware"
	"github.com/nutriia/backend/internal/service"
)

// SetupRouter builds the gin engine with CORS and all application
// routes.
func SetupRouter(db *gorm.DB, authService *service.AuthService, llm service.LLMClient, redisClient *redis.Client) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, authService, llm, redisClient)

	return router
}
