package entity

import "strings"

// Sentiment represents one of the three fixed sentiment categories
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// String returns the sentiment label
func (s Sentiment) String() string {
	return string(s)
}

// IsValid returns true if the sentiment is one of the three known labels
func (s Sentiment) IsValid() bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}

// ParseSentiment coerces a free-form model reply into one of the three
// sentiment labels. The reply is trimmed before its first line is taken,
// so a reply that starts with a newline still classifies. An exact label
// match wins; otherwise a substring match is attempted, and anything
// still unrecognized falls back to Neutral.
func ParseSentiment(raw string) Sentiment {
	line := strings.TrimSpace(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "positive":
		return SentimentPositive
	case "negative":
		return SentimentNegative
	case "neutral":
		return SentimentNeutral
	}

	if strings.Contains(line, "positive") {
		return SentimentPositive
	}
	if strings.Contains(line, "negative") {
		return SentimentNegative
	}
	return SentimentNeutral
}
