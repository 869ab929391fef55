package scoring

import (
	"StockPulse/internal/domain/models"
)

// Momentum component weights and label thresholds.
const (
	maSignalWeight    = 0.4
	priceVsMA50Weight = 0.3
	rsiSignalWeight   = 0.3

	rsiOverbought = 70.0
	rsiOversold   = 30.0

	strongBullishAbove = 0.3
	bullishAbove       = 0.1
	strongBearishBelow = -0.3
	bearishBelow       = -0.1
)

// ClassifyMomentum combines the MA50/MA200 relationship, price position
// against MA50, and RSI into a discrete momentum label. If either moving
// average is unknown the classification short-circuits to Neutral.
//
// volatility is accepted for interface compatibility but does not currently
// affect the result.
func ClassifyMomentum(ma50, ma200, currentPrice, rsi, volatility float64) models.MomentumLabel {
	if models.IsUnknown(ma50) || models.IsUnknown(ma200) {
		return models.MomentumNeutral
	}
	_ = volatility

	score := 0.0

	if ma50 > ma200 {
		score += maSignalWeight
	} else {
		score -= maSignalWeight
	}

	if currentPrice > ma50 {
		score += priceVsMA50Weight
	} else {
		score -= priceVsMA50Weight
	}

	switch {
	case rsi < rsiOversold:
		score += rsiSignalWeight
	case rsi > rsiOverbought:
		score -= rsiSignalWeight
	}

	switch {
	case score > strongBullishAbove:
		return models.MomentumStrongBullish
	case score > bullishAbove:
		return models.MomentumBullish
	case score < strongBearishBelow:
		return models.MomentumStrongBearish
	case score < bearishBelow:
		return models.MomentumBearish
	default:
		return models.MomentumNeutral
	}
}
