package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/usecase"
)

// AnalyzeHandler handles sentiment analysis HTTP requests
type AnalyzeHandler struct {
	analyzeUC usecase.AnalyzeUsecase
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzeUC usecase.AnalyzeUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{analyzeUC: analyzeUC}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var input usecase.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.analyzeUC.Analyze(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// AnalyzeForm handles POST /analyze/, the legacy form-encoded route.
// It returns a flat body instead of the response envelope.
func (h *AnalyzeHandler) AnalyzeForm(c *gin.Context) {
	input := usecase.AnalyzeInput{Text: c.PostForm("text")}

	output, err := h.analyzeUC.Analyze(c.Request.Context(), &input)
	if err != nil {
		errResp := MapUsecaseError(err)
		c.JSON(errResp.StatusCode, gin.H{"detail": errResp.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sentiment":    output.Sentiment,
		"text":         output.Text,
		"raw_response": output.RawResponse,
	})
}

// Root handles GET /
func (h *AnalyzeHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sentiment Analyzer API is running!"})
}
