package client

import (
	"context"
	"fmt"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/domain/service"
)

// Sampling options tuned for single-word classification answers
const (
	defaultTemperature = 0.1
	defaultTopP        = 0.9
	defaultNumPredict  = 10
)

const promptTemplate = `Analyze the sentiment of the following text and respond with exactly one word: Positive, Negative, or Neutral.

Text: "%s"

Sentiment:`

// OllamaAnalyzer adapts OllamaClient to the SentimentAnalyzer interface
type OllamaAnalyzer struct {
	client *OllamaClient
	model  string
}

// NewOllamaAnalyzer creates a new OllamaAnalyzer for the given model
func NewOllamaAnalyzer(client *OllamaClient, model string) service.SentimentAnalyzer {
	return &OllamaAnalyzer{
		client: client,
		model:  model,
	}
}

// BuildPrompt builds the classification prompt for a text
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// Analyze asks the model for the sentiment of a single text
func (a *OllamaAnalyzer) Analyze(ctx context.Context, text string) (*service.AnalysisResult, error) {
	resp, err := a.client.Generate(ctx, &GenerateRequest{
		Model:  a.model,
		Prompt: BuildPrompt(text),
		Stream: false,
		Options: GenerateOptions{
			Temperature: defaultTemperature,
			TopP:        defaultTopP,
			NumPredict:  defaultNumPredict,
		},
	})
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.model
	}

	return &service.AnalysisResult{
		RawResponse: resp.Response,
		Model:       model,
	}, nil
}
