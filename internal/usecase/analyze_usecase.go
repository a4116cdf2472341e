package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/entity"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/repository"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/service"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/infrastructure/metrics"
)

// Error definitions for analyze usecase
var (
	ErrEmptyText           = errors.New("text cannot be empty")
	ErrTextTooLong         = errors.New("text too long")
	ErrAnalyzerUnavailable = errors.New("inference service unavailable")
)

// MaxTextLength is the upper bound on analyzable text
const MaxTextLength = 10000

// AnalyzeInput represents the input for a sentiment analysis
type AnalyzeInput struct {
	Text string `json:"text" form:"text" binding:"required"`
}

// AnalysisOutput represents the output of a sentiment analysis
type AnalysisOutput struct {
	AnalysisID  uuid.UUID `json:"analysis_id"`
	Sentiment   string    `json:"sentiment"`
	Text        string    `json:"text"`
	RawResponse string    `json:"raw_response"`
	Model       string    `json:"model"`
	LatencyMs   int64     `json:"latency_ms"`
	Cached      bool      `json:"cached"`
	AnalyzedAt  string    `json:"analyzed_at"`
}

// AnalyzeUsecase defines the interface for sentiment analysis business logic
type AnalyzeUsecase interface {
	Analyze(ctx context.Context, input *AnalyzeInput) (*AnalysisOutput, error)
}

type analyzeUsecase struct {
	analyzer service.SentimentAnalyzer
	cache    repository.AnalysisCache
	model    string
}

// NewAnalyzeUsecase creates a new analyze usecase. The cache may be nil,
// in which case every request goes to the inference service.
func NewAnalyzeUsecase(analyzer service.SentimentAnalyzer, cache repository.AnalysisCache, model string) AnalyzeUsecase {
	return &analyzeUsecase{
		analyzer: analyzer,
		cache:    cache,
		model:    model,
	}
}

func (u *analyzeUsecase) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalysisOutput, error) {
	text := input.Text
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	start := time.Now()

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, u.model, text)
		if err == nil && cached != nil {
			metrics.CacheHitsTotal.Inc()
			analysis := entity.NewAnalysis(text)
			analysis.SetCachedResult(cached.Sentiment, cached.RawResponse, cached.Model, time.Since(start).Milliseconds())
			return toAnalysisOutput(analysis, true), nil
		}
		metrics.CacheMissesTotal.Inc()
	}

	inferStart := time.Now()
	result, err := u.analyzer.Analyze(ctx, text)
	if err != nil {
		metrics.AnalyzeErrorsTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrAnalyzerUnavailable, err)
	}
	metrics.OllamaRequestDuration.Observe(time.Since(inferStart).Seconds())

	analysis := entity.NewAnalysis(text)
	analysis.SetResult(result.RawResponse, result.Model, time.Since(start).Milliseconds())

	metrics.AnalysesTotal.WithLabelValues(analysis.Sentiment.String()).Inc()
	metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())

	if u.cache != nil {
		// Best effort, a failed write never fails the request
		_ = u.cache.Set(ctx, u.model, text, &repository.CachedAnalysis{
			Sentiment:   analysis.Sentiment,
			RawResponse: analysis.RawResponse,
			Model:       analysis.Model,
		})
	}

	return toAnalysisOutput(analysis, false), nil
}

func toAnalysisOutput(a *entity.Analysis, cached bool) *AnalysisOutput {
	return &AnalysisOutput{
		AnalysisID:  a.ID,
		Sentiment:   a.Sentiment.String(),
		Text:        a.Text,
		RawResponse: a.RawResponse,
		Model:       a.Model,
		LatencyMs:   a.LatencyMs,
		Cached:      cached,
		AnalyzedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
