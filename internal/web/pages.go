package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sample holds one canned example text offered on the form page
type Sample struct {
	Key   string
	Label string
	Text  string
}

// sampleTexts are the canned example texts offered on the form page
var sampleTexts = []Sample{
	{
		Key:   "positive",
		Label: "Positive Example",
		Text:  "I absolutely love this new restaurant! The food was delicious and the service was exceptional.",
	},
	{
		Key:   "negative",
		Label: "Negative Example",
		Text:  "This movie was terrible. I wasted my money and fell asleep halfway through.",
	},
	{
		Key:   "neutral",
		Label: "Neutral Example",
		Text:  "The meeting is scheduled for 2 PM tomorrow in conference room B. Please bring your laptops.",
	},
}

func sampleByKey(key string) string {
	for _, s := range sampleTexts {
		if s.Key == key {
			return s.Text
		}
	}
	return ""
}

// ResultView is the rendered outcome of an analysis
type ResultView struct {
	Sentiment     string
	Description   string
	RawResponse   string
	Model         string
	Cached        bool
	ProcessingSec float64
	AnalyzedAt    string
}

// PageData is the template data for the form page
type PageData struct {
	Text         string
	CharCount    int
	Result       *ResultView
	ErrorMessage string
	Health       *HealthView
	Samples      []Sample
}

// HealthView is the rendered system status block
type HealthView struct {
	APIReachable bool
	Components   map[string]string
}

func sentimentClass(sentiment string) string {
	switch strings.ToLower(sentiment) {
	case "positive":
		return "sentiment-positive"
	case "negative":
		return "sentiment-negative"
	default:
		return "sentiment-neutral"
	}
}

func sentimentEmoji(sentiment string) string {
	switch strings.ToLower(sentiment) {
	case "positive":
		return "😊"
	case "negative":
		return "😞"
	default:
		return "😐"
	}
}

func describeSentiment(sentiment string) string {
	switch strings.ToLower(sentiment) {
	case "positive":
		return "The text expresses a positive sentiment."
	case "negative":
		return "The text expresses a negative sentiment."
	default:
		return "The text expresses a neutral sentiment."
	}
}

// indexPage handles GET /. A ?sample=<key> query pre-fills the textarea
// and ?health=1 fetches the system status block.
func (s *Server) indexPage(c *gin.Context) {
	data := PageData{
		Samples: sampleTexts,
	}

	if key := c.Query("sample"); key != "" {
		data.Text = sampleByKey(key)
		data.CharCount = len(data.Text)
	}

	if c.Query("health") != "" {
		data.Health = s.fetchHealth(c)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

// analyzePage handles POST /analyze
func (s *Server) analyzePage(c *gin.Context) {
	text := c.PostForm("text")

	data := PageData{
		Text:      text,
		CharCount: len(text),
		Samples:   sampleTexts,
	}

	if strings.TrimSpace(text) == "" {
		data.ErrorMessage = "Please enter some text to analyze!"
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	start := time.Now()
	result, err := s.api.Analyze(c.Request.Context(), text)
	if err != nil {
		s.logger.Warn("Analysis request failed", zap.Error(err))
		data.ErrorMessage = "Cannot analyze right now: " + err.Error()
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	data.Result = &ResultView{
		Sentiment:     result.Sentiment,
		Description:   describeSentiment(result.Sentiment),
		RawResponse:   result.RawResponse,
		Model:         result.Model,
		Cached:        result.Cached,
		ProcessingSec: time.Since(start).Seconds(),
		AnalyzedAt:    result.AnalyzedAt,
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) fetchHealth(c *gin.Context) *HealthView {
	health, err := s.api.Health(c.Request.Context())
	if err != nil {
		s.logger.Warn("API health check failed", zap.Error(err))
		return &HealthView{APIReachable: false}
	}

	return &HealthView{
		APIReachable: true,
		Components:   health.Components,
	}
}
