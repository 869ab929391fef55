// Package display provides presentation helpers for analysis output:
// currency/percentage rendering and color classification by enum. These are
// derived lookups for the presentation collaborator, not scoring logic.
package display

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"

	"StockPulse/internal/domain/models"
)

// Currency renders a USD amount like "$1,234.56". Unknown values render "N/A".
func Currency(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return money.New(int64(math.Round(v*100)), money.USD).Display()
}

// Percentage renders a percent value like "12.34%". Unknown values render "N/A".
func Percentage(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v)
}

// SentimentColor returns the display color for a sentiment bucket.
func SentimentColor(s models.Sentiment) string {
	switch s {
	case models.SentimentVeryPositive, models.SentimentPositive:
		return "green"
	case models.SentimentVeryNegative, models.SentimentNegative:
		return "red"
	default:
		return "orange"
	}
}

// MomentumColor returns the display color for a momentum label.
func MomentumColor(m models.MomentumLabel) string {
	switch m {
	case models.MomentumStrongBullish, models.MomentumBullish:
		return "green"
	case models.MomentumStrongBearish, models.MomentumBearish:
		return "red"
	default:
		return "orange"
	}
}

// RecommendationColor returns the display color for a recommendation action.
func RecommendationColor(a models.Action) string {
	switch a {
	case models.ActionStrongBuy, models.ActionBuy:
		return "green"
	case models.ActionStrongSell, models.ActionConsiderSelling:
		return "red"
	default:
		return "blue"
	}
}
