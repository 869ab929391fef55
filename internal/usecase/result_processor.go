package usecase

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/models"
	drepo "StockPulse/internal/domain/repository"
)

// ResultProcessor persists finished analysis results to the configured backend.
type ResultProcessor struct {
	pub     drepo.Publisher
	archive drepo.ResultArchive
	metrics drepo.Metrics
	backend string
	batchSz int
	batchTO time.Duration
}

// NewResultProcessor creates a new ResultProcessor instance.
func NewResultProcessor(
	pub drepo.Publisher,
	archive drepo.ResultArchive,
	metrics drepo.Metrics,
	backend string,
	batchSz int,
	batchTO time.Duration,
) *ResultProcessor {
	return &ResultProcessor{
		pub:     pub,
		archive: archive,
		metrics: metrics,
		backend: backend,
		batchSz: batchSz,
		batchTO: batchTO,
	}
}

// Process routes a single analysis result to the configured backend.
func (p *ResultProcessor) Process(ctx context.Context, r *models.AnalysisResult) error {
	if r == nil {
		return fmt.Errorf("result is nil")
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.Publish(ctx, r)
	case "clickhouse":
		err = p.archive.Store(ctx, r)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process")
		return fmt.Errorf("process result: %w", err)
	}

	p.metrics.RecordRecommendation(r.Symbol, string(r.Recommendation.Action))
	p.metrics.RecordScore(r.Symbol, r.Recommendation.Score)
	p.metrics.RecordLatency("process", time.Since(start).Seconds())

	return nil
}

// ProcessBatch routes multiple analysis results in a batch.
func (p *ResultProcessor) ProcessBatch(ctx context.Context, results []*models.AnalysisResult) error {
	if len(results) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, results)
	case "clickhouse":
		err = p.archive.StoreBatch(ctx, results)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	for _, r := range results {
		p.metrics.RecordRecommendation(r.Symbol, string(r.Recommendation.Action))
	}
	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())

	return nil
}

// Close closes underlying resources if available.
func (p *ResultProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
	if p.archive != nil {
		_ = p.archive.Close()
	}
}
