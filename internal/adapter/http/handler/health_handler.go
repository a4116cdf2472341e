package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/client"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	ollama *client.OllamaClient
	redis  *redis.Client
	model  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ollama *client.OllamaClient, redis *redis.Client, model string) *HealthHandler {
	return &HealthHandler{
		ollama: ollama,
		redis:  redis,
		model:  model,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health. The API reports its own state plus the
// state of its dependencies; a broken dependency degrades the status
// but never turns the endpoint into an error response.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	components["api"] = "ok"
	degraded := false

	// Check Ollama and the configured model
	if err := h.ollama.Ping(ctx); err != nil {
		components["ollama"] = "error: " + err.Error()
		components["model"] = "unknown"
		degraded = true
	} else {
		components["ollama"] = "ok"

		ok, err := h.ollama.HasModel(ctx, h.model)
		switch {
		case err != nil:
			components["model"] = "error: " + err.Error()
			degraded = true
		case !ok:
			components["model"] = "not found"
			degraded = true
		default:
			components["model"] = "available"
		}
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			degraded = true
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	if degraded {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.ollama.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "ollama unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
