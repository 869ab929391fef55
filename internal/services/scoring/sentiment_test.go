package scoring

import (
	"testing"

	"StockPulse/internal/domain/models"
)

func TestAggregateSentimentEmpty(t *testing.T) {
	got := AggregateSentiment(nil)
	want := models.SentimentSummary{Sentiment: models.SentimentNeutral}
	if got != want {
		t.Fatalf("empty input: got %+v, want %+v", got, want)
	}
}

func TestAggregateSentimentAverages(t *testing.T) {
	scores := []models.PolarityScore{
		{Compound: 0.6, Positive: 0.5, Negative: 0.1, Neutral: 0.4},
		{Compound: 0.2, Positive: 0.3, Negative: 0.2, Neutral: 0.5},
	}
	got := AggregateSentiment(scores)
	if got.CompoundScore != 0.4 {
		t.Fatalf("compound: got %v, want 0.4", got.CompoundScore)
	}
	if got.PositiveScore != 0.4 {
		t.Fatalf("positive: got %v, want 0.4", got.PositiveScore)
	}
	if !almostEqual(got.NegativeScore, 0.15) {
		t.Fatalf("negative: got %v, want 0.15", got.NegativeScore)
	}
	if got.Sentiment != models.SentimentVeryPositive {
		t.Fatalf("sentiment: got %v, want %v", got.Sentiment, models.SentimentVeryPositive)
	}
}

func TestAggregateSentimentClassification(t *testing.T) {
	cases := []struct {
		compound float64
		want     models.Sentiment
	}{
		{0.25, models.SentimentVeryPositive},
		{0.10, models.SentimentPositive},
		{0.0, models.SentimentNeutral},
		{-0.10, models.SentimentNegative},
		{-0.25, models.SentimentVeryNegative},
		// boundary values fall to the less extreme branch
		{0.20, models.SentimentPositive},
		{0.05, models.SentimentNeutral},
		{-0.05, models.SentimentNeutral},
		{-0.20, models.SentimentNegative},
	}
	for _, c := range cases {
		got := AggregateSentiment([]models.PolarityScore{{Compound: c.compound}})
		if got.Sentiment != c.want {
			t.Fatalf("compound %v: got %v, want %v", c.compound, got.Sentiment, c.want)
		}
	}
}
