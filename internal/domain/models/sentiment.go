package models

// Headline is a single news headline supplied by the news collaborator.
type Headline struct {
	Title     string `json:"title"`
	Published string `json:"published"` // RFC3339 or opaque source string
}

// PolarityScore is the per-headline polarity triple plus compound, computed
// by the external sentiment-scoring service.
type PolarityScore struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
}

// Sentiment classifies an average compound score into five buckets.
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "Very Positive"
	SentimentPositive     Sentiment = "Positive"
	SentimentNeutral      Sentiment = "Neutral"
	SentimentNegative     Sentiment = "Negative"
	SentimentVeryNegative Sentiment = "Very Negative"
)

// SentimentSummary is the aggregated, classified sentiment for one security.
// Recomputed on every aggregation call; never persisted.
type SentimentSummary struct {
	CompoundScore float64   `json:"compound_score"`
	Sentiment     Sentiment `json:"sentiment"`
	PositiveScore float64   `json:"positive_score"`
	NegativeScore float64   `json:"negative_score"`
	NeutralScore  float64   `json:"neutral_score"`
}
