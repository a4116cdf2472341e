package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/client"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/http/handler"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/http/middleware"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/repository/rediscache"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/repository"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/infrastructure/config"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(cfg *config.Config, ollamaClient *client.OllamaClient, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(ollamaClient, redisClient, cfg.Ollama.Model)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Optional result cache
	var analysisCache repository.AnalysisCache
	if redisClient != nil {
		analysisCache = rediscache.NewAnalysisCache(redisClient, cfg.Cache.TTL)
	}

	// Initialize analyzer and usecase
	analyzer := client.NewOllamaAnalyzer(ollamaClient, cfg.Ollama.Model)
	analyzeUC := usecase.NewAnalyzeUsecase(analyzer, analysisCache, cfg.Ollama.Model)

	// Initialize handlers
	analyzeHandler := handler.NewAnalyzeHandler(analyzeUC)

	router.GET("/", analyzeHandler.Root)

	// Form-encoded compatibility route
	router.POST("/analyze/", analyzeHandler.AnalyzeForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", analyzeHandler.Analyze)
	}

	return router
}
