package service

import (
	"context"

	"StockPulse/internal/domain/models"
)

// MarketDataProvider supplies materialized per-security snapshots
// (price, moving averages, RSI, volatility, volume, price changes).
type MarketDataProvider interface {
	Snapshot(ctx context.Context, symbol string) (models.SecuritySnapshot, error)
}

// NewsProvider supplies recent headlines for a security.
type NewsProvider interface {
	Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error)
}

// SentimentScorer scores raw headline texts into polarity triples.
// One PolarityScore per input text, in input order.
type SentimentScorer interface {
	Score(ctx context.Context, texts []string) ([]models.PolarityScore, error)
}

// AnalystProvider supplies the analyst consensus for a security.
type AnalystProvider interface {
	Consensus(ctx context.Context, symbol string) (models.AnalystConsensus, error)
}
