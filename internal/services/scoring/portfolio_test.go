package scoring

import (
	"testing"

	"StockPulse/internal/domain/models"
)

func result(action models.Action, momentum models.MomentumLabel, trend models.Trend, sentiment float64) models.AnalysisResult {
	return models.AnalysisResult{
		Recommendation:    models.Recommendation{Action: action},
		Momentum:          momentum,
		TechnicalAnalysis: models.TechnicalAnalysis{Trend: trend},
		SentimentScore:    sentiment,
	}
}

func TestAggregatePortfolioEmpty(t *testing.T) {
	got := AggregatePortfolio(nil)
	if got != (models.PortfolioMetrics{}) {
		t.Fatalf("empty set: got %+v, want zero value", got)
	}
	got = AggregatePortfolio(map[string]models.AnalysisResult{})
	if got.TotalSecurities != 0 {
		t.Fatalf("empty map: got total %d, want 0", got.TotalSecurities)
	}
}

func TestAggregatePortfolioCounts(t *testing.T) {
	results := map[string]models.AnalysisResult{
		"AAPL": result(models.ActionStrongBuy, models.MomentumStrongBullish, models.TrendUp, 0.4),
		"MSFT": result(models.ActionBuy, models.MomentumBullish, models.TrendUp, 0.2),
		"GOOG": result(models.ActionHold, models.MomentumNeutral, models.TrendSideways, 0),
		"AMZN": result(models.ActionConsiderSelling, models.MomentumBearish, models.TrendDown, -0.2),
		"TSLA": result(models.ActionStrongSell, models.MomentumStrongBearish, models.TrendDown, -0.4),
	}
	m := AggregatePortfolio(results)

	if m.TotalSecurities != 5 {
		t.Fatalf("total: got %d, want 5", m.TotalSecurities)
	}
	actionSum := m.StrongBuy + m.Buy + m.Hold + m.Sell + m.StrongSell
	if actionSum != 5 {
		t.Fatalf("action counts sum to %d, want 5", actionSum)
	}
	if m.StrongBuy != 1 || m.Buy != 1 || m.Hold != 1 || m.Sell != 1 || m.StrongSell != 1 {
		t.Fatalf("action counts: %+v", m)
	}
	momentumSum := m.StrongBullish + m.Bullish + m.NeutralMomentum + m.Bearish + m.StrongBearish
	if momentumSum != 5 {
		t.Fatalf("momentum counts sum to %d, want 5", momentumSum)
	}
	if m.Uptrend != 2 || m.Downtrend != 2 || m.Sideways != 1 {
		t.Fatalf("trend counts: up=%d down=%d sideways=%d", m.Uptrend, m.Downtrend, m.Sideways)
	}
	if !almostEqual(m.AvgSentiment, 0) {
		t.Fatalf("avg sentiment: got %v, want 0", m.AvgSentiment)
	}
}

func TestAggregatePortfolioAvgSentiment(t *testing.T) {
	results := map[string]models.AnalysisResult{
		"A": result(models.ActionHold, models.MomentumNeutral, models.TrendSideways, 0.3),
		"B": result(models.ActionHold, models.MomentumNeutral, models.TrendSideways, 0.1),
	}
	m := AggregatePortfolio(results)
	if !almostEqual(m.AvgSentiment, 0.2) {
		t.Fatalf("avg sentiment: got %v, want 0.2", m.AvgSentiment)
	}
}
