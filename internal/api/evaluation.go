package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutriia/backend/internal/clinical"
	"github.com/nutriia/backend/internal/service"
	"github.com/nutriia/backend/internal/types"
)

// EvaluationHandler handles the evaluation endpoints.
type EvaluationHandler struct {
	evaluations *service.EvaluationService
}

func NewEvaluationHandler(evaluations *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations}
}

func (h *EvaluationHandler) RegisterRoutes(router *gin.RouterGroup) {
	evals := router.Group("/evaluations")
	{
		evals.GET("", h.List)
		evals.GET("/stats", h.Stats)
		evals.GET("/patient/:name", h.ListByPatient)
		evals.POST("", h.Create)
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

func (h *EvaluationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eval, err := h.evaluations.Create(userID, &req)
	if err != nil {
		if errors.Is(err, clinical.ErrInvalidMeasurement) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("create evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al guardar evaluación"})
		return
	}

	c.JSON(http.StatusCreated, eval)
}

func (h *EvaluationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	evals, err := h.evaluations.List(userID)
	if err != nil {
		log.Printf("list evaluations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener evaluaciones"})
		return
	}

	c.JSON(http.StatusOK, evals)
}

func (h *EvaluationHandler) ListByPatient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	evals, err := h.evaluations.ListByPatient(userID, c.Param("name"))
	if err != nil {
		log.Printf("list patient evaluations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener evaluaciones"})
		return
	}

	c.JSON(http.StatusOK, evals)
}

func (h *EvaluationHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.evaluations.Stats(userID)
	if err != nil {
		log.Printf("evaluation stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener estadísticas"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
