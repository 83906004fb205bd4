package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/item-analysis-service/internal/services"
	"github.com/SAP-F-2025/item-analysis-service/internal/utils"
)

type HandlerManager struct {
	analysisHandler *AnalysisHandler
}

func NewHandlerManager(analysisService services.AnalysisService, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		analysisHandler: NewAnalysisHandler(analysisService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analyses := v1.Group("/analyses")
		{
			analyses.POST("", hm.analysisHandler.CreateAnalysis)
		}
	}
}
