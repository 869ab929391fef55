package api

import (
	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/display"
)

// analysisView decorates an AnalysisResult with the presentation fields
// clients render directly: formatted price/changes and per-enum colors.
type analysisView struct {
	*models.AnalysisResult
	PriceDisplay        string `json:"price_display"`
	Change1DDisplay     string `json:"price_change_1d_display"`
	Change5DDisplay     string `json:"price_change_5d_display"`
	SentimentColor      string `json:"sentiment_color"`
	MomentumColor       string `json:"momentum_color"`
	RecommendationColor string `json:"recommendation_color"`
}

func newAnalysisView(r *models.AnalysisResult) analysisView {
	return analysisView{
		AnalysisResult:      r,
		PriceDisplay:        display.Currency(r.CurrentPrice),
		Change1DDisplay:     display.Percentage(r.PriceChanges.OneDay),
		Change5DDisplay:     display.Percentage(r.PriceChanges.FiveDay),
		SentimentColor:      display.SentimentColor(r.Sentiment),
		MomentumColor:       display.MomentumColor(r.Momentum),
		RecommendationColor: display.RecommendationColor(r.Recommendation.Action),
	}
}

// portfolioView replaces the raw per-ticker results with decorated views.
type portfolioView struct {
	*models.PortfolioAnalysis
	Results map[string]analysisView `json:"results"`
}

func newPortfolioView(pa *models.PortfolioAnalysis) portfolioView {
	views := make(map[string]analysisView, len(pa.Results))
	for sym, r := range pa.Results {
		r := r
		views[sym] = newAnalysisView(&r)
	}
	return portfolioView{PortfolioAnalysis: pa, Results: views}
}
