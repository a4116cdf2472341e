package entity

import (
	"time"

	"github.com/google/uuid"
)

// Analysis represents a single sentiment analysis of user-supplied text
type Analysis struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	Sentiment   Sentiment `json:"sentiment"`
	RawResponse string    `json:"raw_response"`
	Model       string    `json:"model"`
	LatencyMs   int64     `json:"latency_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAnalysis creates a new Analysis for the given text
func NewAnalysis(text string) *Analysis {
	return &Analysis{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// SetResult sets the model reply and the normalized label for the analysis
func (a *Analysis) SetResult(raw, model string, latencyMs int64) {
	a.RawResponse = raw
	a.Sentiment = ParseSentiment(raw)
	a.Model = model
	a.LatencyMs = latencyMs
}

// SetCachedResult restores a previously normalized result. The stored
// label is authoritative, the raw reply is not parsed again.
func (a *Analysis) SetCachedResult(sentiment Sentiment, raw, model string, latencyMs int64) {
	a.Sentiment = sentiment
	a.RawResponse = raw
	a.Model = model
	a.LatencyMs = latencyMs
}
