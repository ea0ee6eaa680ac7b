package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriia/backend/internal/service"
	"github.com/nutriia/backend/internal/types"
)

// MealPlanHandler handles the meal plan endpoints, including AI
// generation.
type MealPlanHandler struct {
	mealPlans         *service.MealPlanService
	generationLimiter gin.HandlerFunc
}

func NewMealPlanHandler(mealPlans *service.MealPlanService, generationLimiter gin.HandlerFunc) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlans:         mealPlans,
		generationLimiter: generationLimiter,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.GET("", h.List)
		plans.GET("/templates", h.Templates)
		plans.GET("/patient/:name", h.ListByPatient)
		plans.POST("", h.Create)

		if h.generationLimiter != nil {
			plans.POST("/generate", h.generationLimiter, h.Generate)
		} else {
			plans.POST("/generate", h.Generate)
		}
	}
}

func (h *MealPlanHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.mealPlans.List(userID)
	if err != nil {
		log.Printf("list meal plans failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener planes"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *MealPlanHandler) ListByPatient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.mealPlans.ListByPatient(userID, c.Param("name"))
	if err != nil {
		log.Printf("list patient meal plans failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener planes"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Templates exposes the built-in menu catalog.
func (h *MealPlanHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, service.MenuTemplates())
}

func (h *MealPlanHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlans.Create(userID, &req)
	if err != nil {
		log.Printf("create meal plan failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al guardar plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlans.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		var genErr *service.GenerationError
		switch {
		case errors.Is(err, service.ErrEvaluationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &genErr):
			log.Printf("meal plan generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "error al generar plan",
				"details": genErr.Unwrap().Error(),
			})
		default:
			log.Printf("meal plan generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error al generar plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}
