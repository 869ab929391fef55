package usecase

import (
	"context"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

type capturePublisher struct {
	published []*models.AnalysisResult
	closed    bool
}

func (p *capturePublisher) Publish(ctx context.Context, r *models.AnalysisResult) error {
	p.published = append(p.published, r)
	return nil
}

func (p *capturePublisher) PublishBatch(ctx context.Context, rs []*models.AnalysisResult) error {
	p.published = append(p.published, rs...)
	return nil
}

func (p *capturePublisher) Close() error {
	p.closed = true
	return nil
}

type captureArchive struct {
	stored []*models.AnalysisResult
	closed bool
}

func (a *captureArchive) Store(ctx context.Context, r *models.AnalysisResult) error {
	a.stored = append(a.stored, r)
	return nil
}

func (a *captureArchive) StoreBatch(ctx context.Context, rs []*models.AnalysisResult) error {
	a.stored = append(a.stored, rs...)
	return nil
}

func (a *captureArchive) Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.AnalysisResult, error) {
	return nil, nil
}

func (a *captureArchive) Health(ctx context.Context) error { return nil }

func (a *captureArchive) Close() error {
	a.closed = true
	return nil
}

func sampleResult(symbol string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Symbol: symbol,
		Recommendation: models.Recommendation{
			Action:     models.ActionHold,
			Confidence: models.ConfidenceMedium,
		},
	}
}

func TestResultProcessorRoutesToKafka(t *testing.T) {
	pub := &capturePublisher{}
	arc := &captureArchive{}
	proc := NewResultProcessor(pub, arc, nopMetrics{}, "kafka", 10, 0)

	if err := proc.Process(context.Background(), sampleResult("AAPL")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pub.published) != 1 || len(arc.stored) != 0 {
		t.Fatalf("expected kafka routing, got pub=%d archive=%d", len(pub.published), len(arc.stored))
	}
}

func TestResultProcessorRoutesToClickHouse(t *testing.T) {
	pub := &capturePublisher{}
	arc := &captureArchive{}
	proc := NewResultProcessor(pub, arc, nopMetrics{}, "clickhouse", 10, 0)

	if err := proc.ProcessBatch(context.Background(), []*models.AnalysisResult{sampleResult("AAPL"), sampleResult("MSFT")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arc.stored) != 2 || len(pub.published) != 0 {
		t.Fatalf("expected clickhouse routing, got pub=%d archive=%d", len(pub.published), len(arc.stored))
	}
}

func TestResultProcessorUnknownBackend(t *testing.T) {
	proc := NewResultProcessor(&capturePublisher{}, &captureArchive{}, nopMetrics{}, "postgres", 10, 0)
	if err := proc.Process(context.Background(), sampleResult("AAPL")); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestResultProcessorNilResult(t *testing.T) {
	proc := NewResultProcessor(&capturePublisher{}, &captureArchive{}, nopMetrics{}, "kafka", 10, 0)
	if err := proc.Process(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
}

func TestResultProcessorEmptyBatch(t *testing.T) {
	pub := &capturePublisher{}
	proc := NewResultProcessor(pub, &captureArchive{}, nopMetrics{}, "kafka", 10, 0)
	if err := proc.ProcessBatch(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no publishes for empty batch")
	}
}

func TestResultProcessorClose(t *testing.T) {
	pub := &capturePublisher{}
	arc := &captureArchive{}
	proc := NewResultProcessor(pub, arc, nopMetrics{}, "kafka", 10, 0)
	proc.Close()
	if !pub.closed || !arc.closed {
		t.Fatalf("expected both sinks closed")
	}
}
