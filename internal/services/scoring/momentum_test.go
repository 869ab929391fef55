package scoring

import (
	"math"
	"testing"

	"StockPulse/internal/domain/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClassifyMomentumUnknownMAs(t *testing.T) {
	cases := []struct {
		name        string
		ma50, ma200 float64
	}{
		{"ma50 unknown", models.Unknown(), 140},
		{"ma200 unknown", 145, models.Unknown()},
		{"both unknown", models.Unknown(), models.Unknown()},
	}
	for _, c := range cases {
		got := ClassifyMomentum(c.ma50, c.ma200, 150, 25, 0.9)
		if got != models.MomentumNeutral {
			t.Fatalf("%s: got %v, want Neutral", c.name, got)
		}
	}
}

func TestClassifyMomentumLabels(t *testing.T) {
	cases := []struct {
		name        string
		ma50, ma200 float64
		price, rsi  float64
		want        models.MomentumLabel
	}{
		// +0.4 +0.3 +0.3 = 1.0
		{"all bullish", 145, 140, 150, 25, models.MomentumStrongBullish},
		// -0.4 -0.3 -0.3 = -1.0
		{"all bearish", 140, 145, 130, 75, models.MomentumStrongBearish},
		// +0.4 -0.3 +0 = 0.1 -> Neutral (strict >0.1)
		{"boundary neutral", 145, 140, 140, 50, models.MomentumNeutral},
		// +0.4 -0.3 +0.3 = 0.4 -> StrongBullish
		{"oversold rescue", 145, 140, 140, 25, models.MomentumStrongBullish},
		// -0.4 +0.3 -0.3 = -0.4 -> StrongBearish
		{"overbought drag", 140, 145, 150, 75, models.MomentumStrongBearish},
		// +0.4 -0.3 -0.3 = -0.2 -> Bearish
		{"bearish mix", 145, 140, 140, 75, models.MomentumBearish},
		// -0.4 +0.3 +0.3 = 0.2 -> Bullish
		{"bullish mix", 140, 145, 150, 25, models.MomentumBullish},
	}
	for _, c := range cases {
		got := ClassifyMomentum(c.ma50, c.ma200, c.price, c.rsi, 0)
		if got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifyMomentumVolatilityIgnored(t *testing.T) {
	a := ClassifyMomentum(145, 140, 150, 25, 0)
	b := ClassifyMomentum(145, 140, 150, 25, 99)
	if a != b {
		t.Fatalf("volatility changed the label: %v vs %v", a, b)
	}
}
