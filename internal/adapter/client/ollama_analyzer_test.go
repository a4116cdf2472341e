package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("I love this")

	assert.Contains(t, prompt, `Text: "I love this"`)
	assert.Contains(t, prompt, "exactly one word: Positive, Negative, or Neutral")
	assert.Contains(t, prompt, "Sentiment:")
}

func TestOllamaAnalyzer_Analyze(t *testing.T) {
	t.Run("sends prompt with tuned options", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req GenerateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)

			assert.Equal(t, "mistral", req.Model)
			assert.Contains(t, req.Prompt, `Text: "great service"`)
			assert.False(t, req.Stream)
			assert.Equal(t, 0.1, req.Options.Temperature)
			assert.Equal(t, 0.9, req.Options.TopP)
			assert.Equal(t, 10, req.Options.NumPredict)

			_ = json.NewEncoder(w).Encode(GenerateResponse{
				Model:    "mistral:latest",
				Response: " Positive",
				Done:     true,
			})
		}))
		defer server.Close()

		analyzer := NewOllamaAnalyzer(NewOllamaClient(server.URL, 5*time.Second), "mistral")
		result, err := analyzer.Analyze(context.Background(), "great service")

		require.NoError(t, err)
		assert.Equal(t, " Positive", result.RawResponse)
		assert.Equal(t, "mistral:latest", result.Model)
	})

	t.Run("falls back to configured model name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "Neutral", Done: true})
		}))
		defer server.Close()

		analyzer := NewOllamaAnalyzer(NewOllamaClient(server.URL, 5*time.Second), "mistral")
		result, err := analyzer.Analyze(context.Background(), "some text")

		require.NoError(t, err)
		assert.Equal(t, "mistral", result.Model)
	})

	t.Run("propagates upstream errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		analyzer := NewOllamaAnalyzer(NewOllamaClient(server.URL, 5*time.Second), "mistral")
		_, err := analyzer.Analyze(context.Background(), "some text")

		assert.Error(t, err)
	})
}
