package service

import "context"

// AnalysisResult represents the raw outcome of a model inference call
type AnalysisResult struct {
	RawResponse string `json:"raw_response"`
	Model       string `json:"model"`
}

// SentimentAnalyzer defines the interface for sentiment inference
type SentimentAnalyzer interface {
	// Analyze asks the model for the sentiment of a single text
	Analyze(ctx context.Context, text string) (*AnalysisResult, error)
}
