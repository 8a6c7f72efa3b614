package models

import "time"

// Sentiment labels produced by the classifier. The training pipeline encodes
// negative as class 0 and positive as class 1.
const (
	SentimentNegative = "negative"
	SentimentPositive = "positive"
)

// Tweet represents an analyzed tweet
type Tweet struct {
	ID         int64     `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	Sentiment  string    `json:"sentiment" db:"sentiment"`
	Confidence float64   `json:"confidence" db:"confidence"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}

// AnalyzeRequest is the body of POST /api/analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// SentimentStat holds per-label aggregates for the stats endpoint
type SentimentStat struct {
	Count         int64   `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}
