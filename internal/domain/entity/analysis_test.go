package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAnalysis(t *testing.T) {
	analysis := NewAnalysis("some text")

	assert.NotEqual(t, uuid.Nil, analysis.ID)
	assert.Equal(t, "some text", analysis.Text)
	assert.False(t, analysis.CreatedAt.IsZero())
	assert.Empty(t, analysis.RawResponse)
}

func TestAnalysis_SetResult(t *testing.T) {
	t.Run("normalizes the model reply", func(t *testing.T) {
		analysis := NewAnalysis("great day")
		analysis.SetResult(" Positive\n", "mistral:latest", 120)

		assert.Equal(t, SentimentPositive, analysis.Sentiment)
		assert.Equal(t, " Positive\n", analysis.RawResponse)
		assert.Equal(t, "mistral:latest", analysis.Model)
		assert.Equal(t, int64(120), analysis.LatencyMs)
	})

	t.Run("unparseable reply becomes neutral", func(t *testing.T) {
		analysis := NewAnalysis("whatever")
		analysis.SetResult("no idea", "mistral", 5)

		assert.Equal(t, SentimentNeutral, analysis.Sentiment)
	})
}

func TestAnalysis_SetCachedResult(t *testing.T) {
	analysis := NewAnalysis("seen before")
	analysis.SetCachedResult(SentimentNegative, "some free-form reply", "mistral:latest", 2)

	// The stored label is kept as-is, the reply is not normalized again
	assert.Equal(t, SentimentNegative, analysis.Sentiment)
	assert.Equal(t, "some free-form reply", analysis.RawResponse)
	assert.Equal(t, "mistral:latest", analysis.Model)
	assert.Equal(t, int64(2), analysis.LatencyMs)
}
