package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriia/backend/internal/service"
	"github.com/nutriia/backend/internal/types"
)

// MonitoringHandler handles the monitoring endpoints.
type MonitoringHandler struct {
	monitoring      *service.MonitoringService
	analysisLimiter gin.HandlerFunc
}

func NewMonitoringHandler(monitoring *service.MonitoringService, analysisLimiter gin.HandlerFunc) *MonitoringHandler {
	return &MonitoringHandler{
		monitoring:      monitoring,
		analysisLimiter: analysisLimiter,
	}
}

func (h *MonitoringHandler) RegisterRoutes(router *gin.RouterGroup) {
	monitoring := router.Group("/monitoring")
	{
		monitoring.GET("", h.List)
		monitoring.GET("/patients", h.Patients)
		monitoring.POST("/tracking", h.SaveTracking)

		if h.analysisLimiter != nil {
			monitoring.POST("/analyze", h.analysisLimiter, h.Analyze)
		} else {
			monitoring.POST("/analyze", h.Analyze)
		}
	}
}

func (h *MonitoringHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	records, err := h.monitoring.List(userID)
	if err != nil {
		log.Printf("list monitoring records failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener registros de monitoreo"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *MonitoringHandler) Patients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	patients, err := h.monitoring.Patients(userID)
	if err != nil {
		log.Printf("list patients failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener pacientes"})
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (h *MonitoringHandler) Analyze(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, analysis, err := h.monitoring.Analyze(c.Request.Context(), userID, req.PatientName)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("monitoring analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al generar análisis"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"record":   record,
		"analysis": analysis,
	})
}

func (h *MonitoringHandler) SaveTracking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.monitoring.SaveTracking(userID, &req)
	if err != nil {
		log.Printf("save tracking failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al guardar tracking"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
