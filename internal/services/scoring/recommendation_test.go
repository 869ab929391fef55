package scoring

import (
	"testing"

	"StockPulse/internal/domain/models"
)

func TestSynthesizeWeightedTotal(t *testing.T) {
	// total must stay a pure linear function of its five components
	cases := []struct {
		momentum  models.MomentumLabel
		sentiment models.Sentiment
		analyst   float64
		technical float64
		changes   models.PriceChanges
		want      float64
	}{
		{models.MomentumNeutral, models.SentimentNeutral, 0, 0, models.PriceChanges{}, 0},
		{models.MomentumStrongBullish, models.SentimentVeryPositive, 1, 3.5,
			models.PriceChanges{OneDay: 3, FiveDay: 6}, 0.25*2 + 0.20*2 + 0.20*1 + 0.25*3.5 + 0.10*0.8},
		{models.MomentumBearish, models.SentimentPositive, -0.5, -1,
			models.PriceChanges{OneDay: -3}, 0.25*-1 + 0.20*1 + 0.20*-0.5 + 0.25*-1 + 0.10*-0.5},
	}
	for i, c := range cases {
		got := Synthesize(c.momentum, c.sentiment, c.analyst, models.TechnicalAnalysis{Score: c.technical}, c.changes)
		if !almostEqual(got.Score, c.want) {
			t.Fatalf("case %d: score got %v, want %v", i, got.Score, c.want)
		}
	}
}

func TestSynthesizeBandBoundaries(t *testing.T) {
	// exact edges fall to the lower band: strict > means 1.5 is the Buy band's
	// upper edge (not StrongBuy) and 0.5 is Hold's (not Buy).
	cases := []struct {
		analyst float64 // only driver: total = 0.20 * analyst when everything else is zero
		want    models.Action
	}{
		{7.5, models.ActionBuy},              // total = 1.5 exactly, not StrongBuy
		{2.5, models.ActionHold},             // total = 0.5 exactly, not Buy
		{-2.5, models.ActionConsiderSelling}, // total = -0.5 exactly, not Hold
		{-7.5, models.ActionStrongSell},      // total = -1.5 exactly, not ConsiderSelling
		{8, models.ActionStrongBuy},
		{-8, models.ActionStrongSell},
	}
	for _, c := range cases {
		got := Synthesize(models.MomentumNeutral, models.SentimentNeutral, c.analyst,
			models.TechnicalAnalysis{}, models.PriceChanges{})
		if got.Action != c.want {
			t.Fatalf("analyst %v (total %v): got %v, want %v", c.analyst, got.Score, got.Action, c.want)
		}
	}
}

func TestSynthesizeStrongSellScenario(t *testing.T) {
	// every factor at its most negative
	got := Synthesize(
		models.MomentumStrongBearish,
		models.SentimentVeryNegative,
		-1,
		models.TechnicalAnalysis{Score: -2},
		models.PriceChanges{OneDay: -3, FiveDay: -6},
	)
	if !almostEqual(got.Score, -1.68) {
		t.Fatalf("score: got %v, want -1.68", got.Score)
	}
	if got.Action != models.ActionStrongSell {
		t.Fatalf("action: got %v, want Strong Sell", got.Action)
	}
	if got.Confidence != models.ConfidenceHigh {
		t.Fatalf("confidence: got %v, want High", got.Confidence)
	}
	if got.Reasoning != reasonStrongSell {
		t.Fatalf("reasoning: got %q", got.Reasoning)
	}
}

func TestSynthesizeUnknownLabelsDefaultToZero(t *testing.T) {
	got := Synthesize(models.MomentumLabel("???"), models.Sentiment("???"), 0,
		models.TechnicalAnalysis{}, models.PriceChanges{})
	if got.Score != 0 {
		t.Fatalf("score: got %v, want 0", got.Score)
	}
	if got.Action != models.ActionHold {
		t.Fatalf("action: got %v, want Hold", got.Action)
	}
}

func TestSynthesizePriceScoreAdditive(t *testing.T) {
	base := Synthesize(models.MomentumNeutral, models.SentimentNeutral, 0,
		models.TechnicalAnalysis{}, models.PriceChanges{OneDay: 3})
	both := Synthesize(models.MomentumNeutral, models.SentimentNeutral, 0,
		models.TechnicalAnalysis{}, models.PriceChanges{OneDay: 3, FiveDay: 6})
	if !almostEqual(base.Score, 0.05) {
		t.Fatalf("1d only: got %v, want 0.05", base.Score)
	}
	if !almostEqual(both.Score, 0.08) {
		t.Fatalf("1d+5d: got %v, want 0.08", both.Score)
	}
}
