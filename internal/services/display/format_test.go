package display

import (
	"testing"

	"StockPulse/internal/domain/models"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{0.1, "$0.10"},
		{models.Unknown(), "N/A"},
	}
	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Fatalf("Currency(%v): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(12.345); got != "12.35%" {
		t.Fatalf("got %q", got)
	}
	if got := Percentage(models.Unknown()); got != "N/A" {
		t.Fatalf("got %q", got)
	}
}

func TestColors(t *testing.T) {
	if got := SentimentColor(models.SentimentVeryPositive); got != "green" {
		t.Fatalf("sentiment color: got %q", got)
	}
	if got := SentimentColor(models.SentimentNeutral); got != "orange" {
		t.Fatalf("sentiment color: got %q", got)
	}
	if got := MomentumColor(models.MomentumStrongBearish); got != "red" {
		t.Fatalf("momentum color: got %q", got)
	}
	if got := RecommendationColor(models.ActionHold); got != "blue" {
		t.Fatalf("recommendation color: got %q", got)
	}
	if got := RecommendationColor(models.ActionConsiderSelling); got != "red" {
		t.Fatalf("recommendation color: got %q", got)
	}
}
