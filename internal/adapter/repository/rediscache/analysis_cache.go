package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/repository"
)

const keyPrefix = "sentiment:analysis:"

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a Redis-backed analysis cache
func NewAnalysisCache(client *redis.Client, ttl time.Duration) repository.AnalysisCache {
	return &analysisCache{
		client: client,
		ttl:    ttl,
	}
}

// cacheKey derives a fixed-size key from the model and the full text
func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (c *analysisCache) Get(ctx context.Context, model, text string) (*repository.CachedAnalysis, error) {
	data, err := c.client.Get(ctx, cacheKey(model, text)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var cached repository.CachedAnalysis
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &cached, nil
}

func (c *analysisCache) Set(ctx context.Context, model, text string, result *repository.CachedAnalysis) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(model, text), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
