// Package scoring implements the deterministic multi-factor scoring and
// recommendation engine. Every function here is pure: identical inputs yield
// bit-identical outputs, nothing blocks, and no error paths exist — missing
// optional inputs degrade to documented defaults.
package scoring

import "StockPulse/internal/domain/models"

// Compound-score classification thresholds. Fixed, not configurable;
// boundary values fall to the less extreme branch.
const (
	veryPositiveAbove = 0.20
	positiveAbove     = 0.05
	negativeBelow     = -0.05
	veryNegativeBelow = -0.20
)

// AggregateSentiment reduces per-headline polarity scores to one classified
// sentiment. An empty input yields the fixed neutral summary.
func AggregateSentiment(scores []models.PolarityScore) models.SentimentSummary {
	if len(scores) == 0 {
		return models.SentimentSummary{Sentiment: models.SentimentNeutral}
	}

	var compound, positive, negative, neutral float64
	for _, s := range scores {
		compound += s.Compound
		positive += s.Positive
		negative += s.Negative
		neutral += s.Neutral
	}
	n := float64(len(scores))
	compound /= n

	return models.SentimentSummary{
		CompoundScore: compound,
		Sentiment:     classifyCompound(compound),
		PositiveScore: positive / n,
		NegativeScore: negative / n,
		NeutralScore:  neutral / n,
	}
}

func classifyCompound(compound float64) models.Sentiment {
	switch {
	case compound > veryPositiveAbove:
		return models.SentimentVeryPositive
	case compound > positiveAbove:
		return models.SentimentPositive
	case compound < veryNegativeBelow:
		return models.SentimentVeryNegative
	case compound < negativeBelow:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
