package usecase

import (
	"context"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

type queryArchive struct {
	captureArchive
	results   []*models.AnalysisResult
	lastLimit int
}

func (a *queryArchive) Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.AnalysisResult, error) {
	a.lastLimit = limit
	return a.results, nil
}

func TestGetHistory(t *testing.T) {
	arc := &queryArchive{results: []*models.AnalysisResult{sampleResult("AAPL"), sampleResult("AAPL")}}
	uc := NewHistoryUseCase(arc)

	now := time.Now()
	res, err := uc.GetHistory(context.Background(), GetHistoryParams{
		Symbol: "AAPL",
		From:   now.Add(-24 * time.Hour),
		To:     now,
		Limit:  50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != 2 || len(res.Results) != 2 {
		t.Fatalf("unexpected count: %d", res.Count)
	}
	if arc.lastLimit != 50 {
		t.Fatalf("limit not forwarded: %d", arc.lastLimit)
	}
}

func TestGetHistoryDefaultsAndCaps(t *testing.T) {
	arc := &queryArchive{}
	uc := NewHistoryUseCase(arc)
	now := time.Now()

	if _, err := uc.GetHistory(context.Background(), GetHistoryParams{Symbol: "AAPL", To: now}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arc.lastLimit != 100 {
		t.Fatalf("expected default limit 100, got %d", arc.lastLimit)
	}

	if _, err := uc.GetHistory(context.Background(), GetHistoryParams{Symbol: "AAPL", To: now, Limit: 50000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arc.lastLimit != 10000 {
		t.Fatalf("expected limit capped at 10000, got %d", arc.lastLimit)
	}
}

func TestGetHistoryValidation(t *testing.T) {
	uc := NewHistoryUseCase(&queryArchive{})
	now := time.Now()

	if _, err := uc.GetHistory(context.Background(), GetHistoryParams{From: now, To: now}); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
	if _, err := uc.GetHistory(context.Background(), GetHistoryParams{Symbol: "AAPL", From: now, To: now.Add(-time.Hour)}); err == nil {
		t.Fatalf("expected error when from is after to")
	}
}
