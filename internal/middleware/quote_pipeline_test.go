package middleware

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

type stubProc struct {
	mu     sync.Mutex
	quotes []*models.Quote
	err    error
}

func (s *stubProc) Process(ctx context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.quotes = append(s.quotes, q)
	return nil
}

func (s *stubProc) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

type stubMetrics struct{}

func (stubMetrics) RecordRecommendation(string, string) {}
func (stubMetrics) RecordError(string)                  {}
func (stubMetrics) RecordScore(string, float64)         {}
func (stubMetrics) RecordLastPrice(string, float64)     {}
func (stubMetrics) RecordLatency(string, float64)       {}

func validTestQuote(symbol string) *models.Quote {
	return &models.Quote{Symbol: symbol, Timestamp: time.Now().Unix(), Price: 100, Volume: 10}
}

func TestPipelineRejectsInvalidQuotes(t *testing.T) {
	proc := &stubProc{}
	p := NewQuotePipeline(proc, stubMetrics{})

	cases := []*models.Quote{
		nil,
		{Timestamp: 1, Price: 1},
		{Symbol: "AAPL", Price: 1},
		{Symbol: "AAPL", Timestamp: 1, Price: -1},
		{Symbol: "AAPL", Timestamp: 1, Price: 1, Volume: -5},
	}
	for i, q := range cases {
		if err := p.Process(context.Background(), q); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	if proc.count() != 0 {
		t.Fatalf("invalid quotes must not reach downstream")
	}
}

func TestPipelineForwardsValidQuote(t *testing.T) {
	proc := &stubProc{}
	p := NewQuotePipeline(proc, stubMetrics{})

	if err := p.Process(context.Background(), validTestQuote("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.count() != 1 {
		t.Fatalf("expected 1 forwarded quote, got %d", proc.count())
	}
}

func TestPipelineThrottlesPerSymbol(t *testing.T) {
	proc := &stubProc{}
	p := NewQuotePipeline(proc, stubMetrics{}, WithMaxRPS(1))

	// Two quotes for the same symbol in the same instant: second is dropped.
	if err := p.Process(context.Background(), validTestQuote("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Process(context.Background(), validTestQuote("AAPL")); err != nil {
		t.Fatalf("throttled quote must be dropped silently, got: %v", err)
	}
	// A different symbol is not affected.
	if err := p.Process(context.Background(), validTestQuote("MSFT")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.count() != 2 {
		t.Fatalf("expected 2 forwarded quotes, got %d", proc.count())
	}
}

func TestPipelineBuffersOnDownstreamError(t *testing.T) {
	proc := &stubProc{err: fmt.Errorf("store down")}
	p := NewQuotePipeline(proc, stubMetrics{}, WithBufferSize(4))

	if err := p.Process(context.Background(), validTestQuote("AAPL")); err == nil {
		t.Fatalf("expected downstream error to surface")
	}
	if len(p.bufCh) != 1 {
		t.Fatalf("expected quote buffered for retry, got %d", len(p.bufCh))
	}
}

func TestPipelineTransformApplied(t *testing.T) {
	proc := &stubProc{}
	p := NewQuotePipeline(proc, stubMetrics{}, WithTransform(func(q *models.Quote) *models.Quote {
		out := *q
		out.Price = out.Price * 2
		return &out
	}))

	if err := p.Process(context.Background(), validTestQuote("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.count() != 1 || proc.quotes[0].Price != 200 {
		t.Fatalf("transform not applied: %+v", proc.quotes)
	}
}

func TestPipelineFlushRetriesBufferedQuotes(t *testing.T) {
	proc := &stubProc{err: fmt.Errorf("store down")}
	p := NewQuotePipeline(proc, stubMetrics{}, WithBufferSize(4))

	_ = p.Process(context.Background(), validTestQuote("AAPL"))

	// Downstream recovers; the background flusher drains the buffer.
	proc.mu.Lock()
	proc.err = nil
	proc.mu.Unlock()

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if proc.count() == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("buffered quote was not flushed, forwarded=%d", proc.count())
}
