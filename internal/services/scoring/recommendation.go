package scoring

import "StockPulse/internal/domain/models"

// Factor weights of the final recommendation.
const (
	momentumWeight  = 0.25
	sentimentWeight = 0.20
	analystWeight   = 0.20
	technicalWeight = 0.25
	priceWeight     = 0.10
)

// Recommendation band edges, evaluated high to low with strict comparisons:
// a total sitting exactly on an edge falls into the lower band.
const (
	strongBuyAbove       = 1.5
	buyAbove             = 0.5
	holdAbove            = -0.5
	considerSellingAbove = -1.5
)

// Canned per-band rationale. Keyed by score band only; deliberately does not
// attribute the outcome to specific factors.
const (
	reasonStrongBuy       = "Multiple positive signals across all indicators"
	reasonBuy             = "Generally positive signals with some mixed indicators"
	reasonHold            = "Mixed signals, wait for clearer direction"
	reasonConsiderSelling = "Generally negative signals with some mixed indicators"
	reasonStrongSell      = "Multiple negative signals across all indicators"
)

var momentumScores = map[models.MomentumLabel]float64{
	models.MomentumStrongBullish: 2,
	models.MomentumBullish:       1,
	models.MomentumNeutral:       0,
	models.MomentumBearish:       -1,
	models.MomentumStrongBearish: -2,
}

var sentimentScores = map[models.Sentiment]float64{
	models.SentimentVeryPositive: 2,
	models.SentimentPositive:     1,
	models.SentimentNeutral:      0,
	models.SentimentNegative:     -1,
	models.SentimentVeryNegative: -2,
}

// Synthesize combines the classified momentum, sentiment, analyst score,
// technical score, and short-term price changes into the weighted total and
// maps it onto the action/confidence/rationale bands. Unrecognized momentum
// or sentiment labels contribute 0.
func Synthesize(
	momentum models.MomentumLabel,
	sentiment models.Sentiment,
	analystScore float64,
	technical models.TechnicalAnalysis,
	changes models.PriceChanges,
) models.Recommendation {
	momentumScore := momentumScores[momentum]
	sentimentScore := sentimentScores[sentiment]

	// 1-day and 5-day contributions are independent and additive.
	priceScore := 0.0
	if changes.OneDay > 2 {
		priceScore += 0.5
	} else if changes.OneDay < -2 {
		priceScore -= 0.5
	}
	if changes.FiveDay > 5 {
		priceScore += 0.3
	} else if changes.FiveDay < -5 {
		priceScore -= 0.3
	}

	total := momentumScore*momentumWeight +
		sentimentScore*sentimentWeight +
		analystScore*analystWeight +
		technical.Score*technicalWeight +
		priceScore*priceWeight

	rec := models.Recommendation{Score: total}
	switch {
	case total > strongBuyAbove:
		rec.Action = models.ActionStrongBuy
		rec.Confidence = models.ConfidenceHigh
		rec.Reasoning = reasonStrongBuy
	case total > buyAbove:
		rec.Action = models.ActionBuy
		rec.Confidence = models.ConfidenceMedium
		rec.Reasoning = reasonBuy
	case total > holdAbove:
		rec.Action = models.ActionHold
		rec.Confidence = models.ConfidenceMedium
		rec.Reasoning = reasonHold
	case total > considerSellingAbove:
		rec.Action = models.ActionConsiderSelling
		rec.Confidence = models.ConfidenceMedium
		rec.Reasoning = reasonConsiderSelling
	default:
		rec.Action = models.ActionStrongSell
		rec.Confidence = models.ConfidenceHigh
		rec.Reasoning = reasonStrongSell
	}
	return rec
}
