package repository

import (
	"context"
	"time"

	"StockPulse/internal/domain/models"
)

// QuoteStream is a live market feed of price/volume updates.
type QuoteStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Quote, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// SnapshotStore persists the latest SecuritySnapshot per symbol and applies
// live quote updates to it.
type SnapshotStore interface {
	Upsert(ctx context.Context, s models.SecuritySnapshot) error
	Latest(ctx context.Context, symbol string) (models.SecuritySnapshot, error)
	ApplyQuote(ctx context.Context, q *models.Quote) error
	Health(ctx context.Context) error
	Close() error
}

// Publisher publishes finished analysis results downstream.
type Publisher interface {
	Publish(ctx context.Context, r *models.AnalysisResult) error
	PublishBatch(ctx context.Context, results []*models.AnalysisResult) error
	Close() error
}

// ResultArchive stores historical analysis results.
type ResultArchive interface {
	Store(ctx context.Context, r *models.AnalysisResult) error
	StoreBatch(ctx context.Context, results []*models.AnalysisResult) error
	Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.AnalysisResult, error)
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordRecommendation(symbol, action string)
	RecordError(kind string)
	RecordScore(symbol string, score float64)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
