package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the sentiment API service
var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sentiment",
		Name:      "analyses_total",
		Help:      "Total number of completed sentiment analyses by label.",
	}, []string{"sentiment"})

	AnalyzeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sentiment",
		Name:      "analyze_errors_total",
		Help:      "Total number of failed analysis requests.",
	})

	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sentiment",
		Name:      "analyze_duration_seconds",
		Help:      "End-to-end duration of analysis requests.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	OllamaRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sentiment",
		Name:      "ollama_request_duration_seconds",
		Help:      "Duration of inference calls to the Ollama service.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sentiment",
		Name:      "cache_hits_total",
		Help:      "Total number of analysis cache hits.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sentiment",
		Name:      "cache_misses_total",
		Help:      "Total number of analysis cache misses.",
	})
)
