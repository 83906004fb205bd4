package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/item-analysis-service/internal/cache"
	"github.com/SAP-F-2025/item-analysis-service/internal/config"
	"github.com/SAP-F-2025/item-analysis-service/internal/handlers"
	"github.com/SAP-F-2025/item-analysis-service/internal/services"
	"github.com/SAP-F-2025/item-analysis-service/internal/utils"
	"github.com/SAP-F-2025/item-analysis-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := logger.(*utils.SlogLogger).GetSlogLogger()

	// Redis is an optimization; run without it when unavailable.
	var cacheService cache.CacheService = cache.NoopCache{}
	if client, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable, analysis caching disabled", "error", err)
	} else {
		cacheService = cache.NewRedisCache(client, slogger)
		defer client.Close()
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Error("failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	validator := utils.NewValidator()
	analysisService := services.NewAnalysisService(cacheService, publisher, slogger, validator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(analysisService, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("starting item-analysis service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
