package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"empty text", usecase.ErrEmptyText, http.StatusBadRequest, "INVALID_REQUEST"},
		{"text too long", usecase.ErrTextTooLong, http.StatusBadRequest, "INVALID_REQUEST"},
		{"analyzer unavailable", usecase.ErrAnalyzerUnavailable, http.StatusBadGateway, "ANALYZER_UNAVAILABLE"},
		{"wrapped analyzer error", fmt.Errorf("%w: connection refused", usecase.ErrAnalyzerUnavailable), http.StatusBadGateway, "ANALYZER_UNAVAILABLE"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := MapUsecaseError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
