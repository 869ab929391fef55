package scoring

import (
	"testing"

	"StockPulse/internal/domain/models"
)

func snapshot(price, ma20, ma50, ma200, rsi, vol, volume, avgVolume float64) models.SecuritySnapshot {
	return models.SecuritySnapshot{
		Symbol:       "TEST",
		CompanyName:  "Test Corp",
		CurrentPrice: price,
		MA20:         ma20,
		MA50:         ma50,
		MA200:        ma200,
		RSI:          rsi,
		Volatility:   vol,
		Volume:       volume,
		AvgVolume:    avgVolume,
	}
}

func TestScoreTechnicalsStrongUptrendScenario(t *testing.T) {
	// oversold RSI, strict MA chain, high volume, low volatility
	got := ScoreTechnicals(snapshot(150, 148, 145, 140, 25, 0.03, 100, 50))
	if !almostEqual(got.Score, 3.5) {
		t.Fatalf("score: got %v, want 3.5", got.Score)
	}
	if got.Trend != models.TrendUp {
		t.Fatalf("trend: got %v, want Uptrend", got.Trend)
	}
	wantSignals := []string{SignalRSIOversold, SignalStrongUptrend, SignalHighVolume}
	if len(got.Signals) != len(wantSignals) {
		t.Fatalf("signals: got %v, want %v", got.Signals, wantSignals)
	}
	for i := range wantSignals {
		if got.Signals[i] != wantSignals[i] {
			t.Fatalf("signal[%d]: got %q, want %q", i, got.Signals[i], wantSignals[i])
		}
	}
	if got.RSI != 25 {
		t.Fatalf("rsi echo: got %v, want 25", got.RSI)
	}
}

func TestScoreTechnicalsDefaults(t *testing.T) {
	// everything absent except current price
	s := models.NewSecuritySnapshot("X", "X", 100)
	got := ScoreTechnicals(s)
	if !almostEqual(got.Score, 0.5) {
		t.Fatalf("score: got %v, want 0.5", got.Score)
	}
	if got.Trend != models.TrendUp {
		t.Fatalf("trend: got %v, want Uptrend", got.Trend)
	}
	if len(got.Signals) != 2 || got.Signals[0] != SignalRSINeutral || got.Signals[1] != SignalMixed {
		t.Fatalf("signals: got %v, want [%s %s]", got.Signals, SignalRSINeutral, SignalMixed)
	}
}

func TestScoreTechnicalsEqualMAsFallToMixed(t *testing.T) {
	// strict chained inequalities: equal values must not count as a trend
	got := ScoreTechnicals(snapshot(150, 150, 145, 140, 50, 0, 0, 0))
	if got.Signals[1] != SignalMixed {
		t.Fatalf("trend signal: got %q, want %q", got.Signals[1], SignalMixed)
	}
}

func TestScoreTechnicalsDowntrends(t *testing.T) {
	cases := []struct {
		name       string
		snap       models.SecuritySnapshot
		wantScore  float64
		wantSignal string
		wantTrend  models.Trend
	}{
		{
			"strong downtrend",
			snapshot(130, 135, 140, 145, 50, 0, 100, 100),
			-1.5, SignalStrongDowntrend, models.TrendDown,
		},
		{
			"downtrend",
			snapshot(130, 135, 140, 138, 50, 0, 100, 100),
			-0.5, SignalDowntrend, models.TrendDown,
		},
		{
			"uptrend without ma200 chain",
			snapshot(150, 148, 145, 146, 50, 0, 100, 100),
			1.5, SignalUptrend, models.TrendUp,
		},
	}
	for _, c := range cases {
		got := ScoreTechnicals(c.snap)
		if !almostEqual(got.Score, c.wantScore) {
			t.Fatalf("%s: score got %v, want %v", c.name, got.Score, c.wantScore)
		}
		if got.Signals[1] != c.wantSignal {
			t.Fatalf("%s: trend signal got %q, want %q", c.name, got.Signals[1], c.wantSignal)
		}
		if got.Trend != c.wantTrend {
			t.Fatalf("%s: trend got %v, want %v", c.name, got.Trend, c.wantTrend)
		}
	}
}

func TestScoreTechnicalsVolumeAndVolatility(t *testing.T) {
	// overbought, mixed trend, low volume, high volatility:
	// -1 + 0 - 0.5 + 0.3 = -1.2 -> Downtrend
	got := ScoreTechnicals(snapshot(100, 100, 100, 100, 75, 0.06, 40, 100))
	if !almostEqual(got.Score, -1.2) {
		t.Fatalf("score: got %v, want -1.2", got.Score)
	}
	want := []string{SignalRSIOverbought, SignalMixed, SignalLowVolume, SignalHighVolatility}
	if len(got.Signals) != len(want) {
		t.Fatalf("signals: got %v, want %v", got.Signals, want)
	}
	for i := range want {
		if got.Signals[i] != want[i] {
			t.Fatalf("signal[%d]: got %q, want %q", i, got.Signals[i], want[i])
		}
	}
	if got.Trend != models.TrendDown {
		t.Fatalf("trend: got %v, want Downtrend", got.Trend)
	}
}
