package indicators

import (
	"math"
	"testing"
)

func TestComputeLogReturns(t *testing.T) {
	if got := ComputeLogReturns([]float64{100}); got != nil {
		t.Fatalf("expected nil for short series, got %v", got)
	}
	rets := ComputeLogReturns([]float64{100, 110, 99})
	if len(rets) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(rets))
	}
	want := math.Log(1.1)
	if math.Abs(rets[0]-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, rets[0])
	}
}

func TestComputeLogReturnsNonPositivePrice(t *testing.T) {
	rets := ComputeLogReturns([]float64{100, 0, 100})
	if len(rets) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(rets))
	}
	if rets[0] != 0 || rets[1] != 0 {
		t.Fatalf("expected zeros across non-positive price, got %v", rets)
	}
}

func TestRealizedVolatilityConstantSeries(t *testing.T) {
	rets := make([]float64, 30)
	if got := RealizedVolatility(rets, 20, 252); got != 0 {
		t.Fatalf("expected 0 vol for constant returns, got %v", got)
	}
}

func TestRealizedVolatilityWindowTooLarge(t *testing.T) {
	if got := RealizedVolatility([]float64{0.01, -0.01}, 20, 252); got != 0 {
		t.Fatalf("expected 0 when window unfilled, got %v", got)
	}
}

func TestSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	if got := SMA(prices, 3); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
	if got := SMA(prices, 10); got != 0 {
		t.Fatalf("expected 0 when window unfilled, got %v", got)
	}
}

func TestRSI(t *testing.T) {
	// Strictly rising series has no losses.
	rising := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if got := RSI(rising, 14); got != 100 {
		t.Fatalf("expected 100 for rising series, got %v", got)
	}

	// Too short: neutral default.
	if got := RSI([]float64{1, 2}, 14); got != 50 {
		t.Fatalf("expected 50 for short series, got %v", got)
	}

	// Alternating equal gains and losses balance out to 50.
	alt := make([]float64, 0, 16)
	p := 100.0
	for i := 0; i < 16; i++ {
		alt = append(alt, p)
		if i%2 == 0 {
			p += 1
		} else {
			p -= 1
		}
	}
	got := RSI(alt, 14)
	if math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected 50 for balanced series, got %v", got)
	}
}
