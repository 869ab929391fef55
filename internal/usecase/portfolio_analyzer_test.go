package usecase

import (
	"context"
	"fmt"
	"testing"

	"StockPulse/internal/domain/models"
)

// symbolMarket serves distinct snapshots per symbol and fails unknown ones.
type symbolMarket struct {
	snaps map[string]models.SecuritySnapshot
}

func (f *symbolMarket) Snapshot(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	s, ok := f.snaps[symbol]
	if !ok {
		return models.SecuritySnapshot{}, fmt.Errorf("unknown symbol %s", symbol)
	}
	return s, nil
}

func newPortfolioFixture(snaps map[string]models.SecuritySnapshot) *PortfolioAnalyzeUseCase {
	analyzer := NewSecurityAnalyzer(
		&symbolMarket{snaps: snaps},
		&fakeNews{},
		&fakeScorer{},
		&fakeAnalyst{consensus: models.DefaultAnalystConsensus()},
		nil,
		nopMetrics{},
	)
	return NewPortfolioAnalyzeUseCase(analyzer, nil, nopMetrics{}, 3)
}

func TestPortfolioAnalyzeMixedResults(t *testing.T) {
	snaps := map[string]models.SecuritySnapshot{
		"AAPL": bullishSnapshot(),
	}
	uc := newPortfolioFixture(snaps)

	pa, err := uc.Analyze(context.Background(), []string{"AAPL", "MISSING"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pa.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(pa.Results))
	}
	if _, ok := pa.Results["AAPL"]; !ok {
		t.Fatalf("missing AAPL result")
	}
	if len(pa.Errors) != 1 || pa.Errors["MISSING"] == "" {
		t.Fatalf("expected error entry for MISSING, got %v", pa.Errors)
	}
	if pa.Metrics.TotalSecurities != 1 {
		t.Fatalf("expected metrics over 1 security, got %d", pa.Metrics.TotalSecurities)
	}
}

func TestPortfolioAnalyzeDeduplicatesSymbols(t *testing.T) {
	snaps := map[string]models.SecuritySnapshot{
		"AAPL": bullishSnapshot(),
	}
	uc := newPortfolioFixture(snaps)

	pa, err := uc.Analyze(context.Background(), []string{"AAPL", "AAPL", "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pa.Results) != 1 {
		t.Fatalf("expected deduplicated single result, got %d", len(pa.Results))
	}
	if pa.Errors != nil {
		t.Fatalf("expected nil errors map, got %v", pa.Errors)
	}
}

func TestPortfolioAnalyzeEmptySymbols(t *testing.T) {
	uc := newPortfolioFixture(nil)
	if _, err := uc.Analyze(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty symbol list")
	}
}
