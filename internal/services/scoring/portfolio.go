package scoring

import "StockPulse/internal/domain/models"

// AggregatePortfolio folds per-ticker results into portfolio-level counts
// and the mean sentiment compound score. An empty input returns the zero
// PortfolioMetrics sentinel rather than dividing by zero.
func AggregatePortfolio(results map[string]models.AnalysisResult) models.PortfolioMetrics {
	if len(results) == 0 {
		return models.PortfolioMetrics{}
	}

	m := models.PortfolioMetrics{TotalSecurities: len(results)}
	sentimentSum := 0.0

	for _, r := range results {
		switch r.Recommendation.Action {
		case models.ActionStrongBuy:
			m.StrongBuy++
		case models.ActionBuy:
			m.Buy++
		case models.ActionHold:
			m.Hold++
		case models.ActionConsiderSelling:
			m.Sell++
		case models.ActionStrongSell:
			m.StrongSell++
		}

		switch r.Momentum {
		case models.MomentumStrongBullish:
			m.StrongBullish++
		case models.MomentumBullish:
			m.Bullish++
		case models.MomentumNeutral:
			m.NeutralMomentum++
		case models.MomentumBearish:
			m.Bearish++
		case models.MomentumStrongBearish:
			m.StrongBearish++
		}

		switch r.TechnicalAnalysis.Trend {
		case models.TrendUp:
			m.Uptrend++
		case models.TrendDown:
			m.Downtrend++
		case models.TrendSideways:
			m.Sideways++
		}

		sentimentSum += r.SentimentScore
	}

	m.AvgSentiment = sentimentSum / float64(len(results))
	return m
}
