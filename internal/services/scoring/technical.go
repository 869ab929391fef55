package scoring

import "StockPulse/internal/domain/models"

// Signal tags emitted by the technical scorer, in evaluation order:
// RSI first, then trend, then volume, then volatility.
const (
	SignalRSIOversold     = "RSI Oversold"
	SignalRSIOverbought   = "RSI Overbought"
	SignalRSINeutral      = "RSI Neutral"
	SignalStrongUptrend   = "Strong Uptrend"
	SignalUptrend         = "Uptrend"
	SignalStrongDowntrend = "Strong Downtrend"
	SignalDowntrend       = "Downtrend"
	SignalMixed           = "Mixed Signals"
	SignalHighVolume      = "High Volume"
	SignalLowVolume       = "Low Volume"
	SignalHighVolatility  = "High Volatility"
)

const (
	highVolumeRatio    = 1.5
	lowVolumeRatio     = 0.5
	highVolatilityOver = 0.05
)

// ScoreTechnicals accumulates a signed technical score and the ordered signal
// list from a snapshot. Unknown moving averages default to the current price,
// which pushes the trend rule into "Mixed Signals" (strict inequalities).
func ScoreTechnicals(s models.SecuritySnapshot) models.TechnicalAnalysis {
	score := 0.0
	signals := make([]string, 0, 4)

	// RSI
	rsi := s.RSI
	switch {
	case rsi < rsiOversold:
		score += 1
		signals = append(signals, SignalRSIOversold)
	case rsi > rsiOverbought:
		score -= 1
		signals = append(signals, SignalRSIOverbought)
	default:
		score += 0.5
		signals = append(signals, SignalRSINeutral)
	}

	// Moving-average trend. Mutually exclusive branches, checked in order.
	price := s.CurrentPrice
	ma20 := orPrice(s.MA20, price)
	ma50 := orPrice(s.MA50, price)
	ma200 := orPrice(s.MA200, price)

	switch {
	case price > ma20 && ma20 > ma50 && ma50 > ma200:
		score += 2
		signals = append(signals, SignalStrongUptrend)
	case price > ma20 && ma20 > ma50:
		score += 1
		signals = append(signals, SignalUptrend)
	case price < ma20 && ma20 < ma50 && ma50 < ma200:
		score -= 2
		signals = append(signals, SignalStrongDowntrend)
	case price < ma20 && ma20 < ma50:
		score -= 1
		signals = append(signals, SignalDowntrend)
	default:
		signals = append(signals, SignalMixed)
	}

	// Volume anomaly
	switch {
	case s.Volume > s.AvgVolume*highVolumeRatio:
		score += 0.5
		signals = append(signals, SignalHighVolume)
	case s.Volume < s.AvgVolume*lowVolumeRatio:
		score -= 0.5
		signals = append(signals, SignalLowVolume)
	}

	// Volatility
	if s.Volatility > highVolatilityOver {
		score += 0.3
		signals = append(signals, SignalHighVolatility)
	}

	trend := models.TrendSideways
	if score > 0 {
		trend = models.TrendUp
	} else if score < 0 {
		trend = models.TrendDown
	}

	return models.TechnicalAnalysis{
		Score:   score,
		Signals: signals,
		RSI:     rsi,
		Trend:   trend,
	}
}

func orPrice(ma, price float64) float64 {
	if models.IsUnknown(ma) {
		return price
	}
	return ma
}
