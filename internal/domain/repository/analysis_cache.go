package repository

import (
	"context"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/entity"
)

// CachedAnalysis is the cacheable part of an analysis result
type CachedAnalysis struct {
	Sentiment   entity.Sentiment `json:"sentiment"`
	RawResponse string           `json:"raw_response"`
	Model       string           `json:"model"`
}

// AnalysisCache defines the interface for the optional result cache.
// Entries are keyed by model and text and expire after a TTL; a miss is
// reported as (nil, nil).
type AnalysisCache interface {
	// Get retrieves a cached result for the given model and text
	Get(ctx context.Context, model, text string) (*CachedAnalysis, error)

	// Set stores a result for the given model and text
	Set(ctx context.Context, model, text string, result *CachedAnalysis) error
}
