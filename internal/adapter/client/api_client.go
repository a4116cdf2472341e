package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AnalyzeAPIRequest represents a request to the sentiment API service
type AnalyzeAPIRequest struct {
	Text string `json:"text"`
}

// AnalysisData represents the analysis payload returned by the API service
type AnalysisData struct {
	AnalysisID  string `json:"analysis_id"`
	Sentiment   string `json:"sentiment"`
	Text        string `json:"text"`
	RawResponse string `json:"raw_response"`
	Model       string `json:"model"`
	LatencyMs   int64  `json:"latency_ms"`
	Cached      bool   `json:"cached"`
	AnalyzedAt  string `json:"analyzed_at"`
}

// APIError represents the error block of an API response envelope
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

// APIHealth represents the API service health response
type APIHealth struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// APIClient is an HTTP client for the sentiment API service
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new sentiment API client
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze submits a text for sentiment analysis
func (c *APIClient) Analyze(ctx context.Context, text string) (*AnalysisData, error) {
	body, err := json.Marshal(AnalyzeAPIRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		if envelope.Error != nil {
			return nil, fmt.Errorf("API error %s: %s", envelope.Error.Code, envelope.Error.Message)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var data AnalysisData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &data, nil
}

// Health fetches the API service health report
func (c *APIClient) Health(ctx context.Context) (*APIHealth, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var health APIHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &health, nil
}

// Ready checks if the API service is ready to accept requests
func (c *APIClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API not ready: status %d", resp.StatusCode)
	}

	return nil
}
