package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/client"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/http/router"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/infrastructure/cache"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/infrastructure/config"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize Ollama client
	ollamaClient := client.NewOllamaClient(cfg.Ollama.URL, cfg.Ollama.Timeout)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := ollamaClient.Ping(ctx); err != nil {
			log.Warn("Ollama is not reachable, analyses will fail until it is up", zap.Error(err))
		} else {
			log.Info("Connected to Ollama", zap.String("url", cfg.Ollama.URL), zap.String("model", cfg.Ollama.Model))
		}
		cancel()
	}

	// Initialize Redis (optional, continue without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		} else {
			log.Info("Connected to Redis")
			redisClient = rc
		}
	}

	// Setup router
	r := router.Setup(cfg, ollamaClient, redisClient, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
