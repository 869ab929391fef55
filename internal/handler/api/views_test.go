package api

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

func decoratedResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Symbol:       "AAPL",
		CompanyName:  "Apple Inc.",
		CurrentPrice: 1234.5,
		RSI:          60,
		Momentum:     models.MomentumStrongBullish,
		Sentiment:    models.SentimentVeryPositive,
		Recommendation: models.Recommendation{
			Action:     models.ActionStrongBuy,
			Confidence: models.ConfidenceHigh,
			Score:      1.89,
		},
		PriceChanges: models.PriceChanges{OneDay: 3, FiveDay: 6},
	}
}

func TestAnalysisViewDecoration(t *testing.T) {
	v := newAnalysisView(decoratedResult())

	if v.PriceDisplay != "$1,234.50" {
		t.Fatalf("unexpected price display: %s", v.PriceDisplay)
	}
	if v.Change1DDisplay != "3.00%" || v.Change5DDisplay != "6.00%" {
		t.Fatalf("unexpected change displays: %s / %s", v.Change1DDisplay, v.Change5DDisplay)
	}
	if v.SentimentColor != "green" || v.MomentumColor != "green" || v.RecommendationColor != "green" {
		t.Fatalf("unexpected colors: %s %s %s", v.SentimentColor, v.MomentumColor, v.RecommendationColor)
	}
}

func TestAnalysisViewMarshalsFlat(t *testing.T) {
	b, err := json.Marshal(newAnalysisView(decoratedResult()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"symbol":"AAPL"`, `"price_display":"$1,234.50"`, `"recommendation_color":"green"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("missing %s in %s", key, s)
		}
	}
}

func TestPortfolioViewDecoratesResults(t *testing.T) {
	pa := &models.PortfolioAnalysis{
		Timestamp: time.Now().UTC(),
		Results:   map[string]models.AnalysisResult{"AAPL": *decoratedResult()},
		Metrics:   models.PortfolioMetrics{TotalSecurities: 1},
	}

	v := newPortfolioView(pa)
	av, ok := v.Results["AAPL"]
	if !ok {
		t.Fatalf("missing decorated result")
	}
	if av.PriceDisplay != "$1,234.50" {
		t.Fatalf("unexpected price display: %s", av.PriceDisplay)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"total_securities":1`) {
		t.Fatalf("metrics lost in view: %s", b)
	}
}
