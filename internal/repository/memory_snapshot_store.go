package repository

import (
	"context"
	"fmt"
	"sync"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/indicators"
)

// Rolling intraday price window per symbol. 1-second-class feeds fill it fast;
// ~252 trading periods per year keeps the annualization roughly daily-scale
// once quotes are throttled upstream.
const (
	priceWindowCap = 256
	rsiPeriod      = 14
	volWindow      = 20
	obsPerYear     = 252
)

// MemorySnapshotStore keeps the latest SecuritySnapshot per symbol in memory.
// Live quotes mutate price and intraday volume in place; full snapshots from
// Kafka or the market-data collaborator replace the entry wholesale. Once
// enough quotes accumulate, short-term RSI and volatility are recomputed
// locally so stale collaborator values do not linger between refreshes.
type MemorySnapshotStore struct {
	mu     sync.RWMutex
	m      map[string]models.SecuritySnapshot
	prices map[string][]float64
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		m:      make(map[string]models.SecuritySnapshot),
		prices: make(map[string][]float64),
	}
}

func (s *MemorySnapshotStore) Upsert(ctx context.Context, snap models.SecuritySnapshot) error {
	if snap.Symbol == "" {
		return fmt.Errorf("symbol empty")
	}
	s.mu.Lock()
	s.m[snap.Symbol] = snap
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Latest(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	s.mu.RLock()
	snap, ok := s.m[symbol]
	s.mu.RUnlock()
	if !ok {
		return models.SecuritySnapshot{}, fmt.Errorf("no snapshot for %s", symbol)
	}
	return snap, nil
}

// ApplyQuote folds a live quote into the stored snapshot: the price replaces
// CurrentPrice and the quote volume accumulates into intraday Volume. Quotes
// for unseen symbols seed a default snapshot.
func (s *MemorySnapshotStore) ApplyQuote(ctx context.Context, q *models.Quote) error {
	if q == nil || q.Symbol == "" {
		return fmt.Errorf("invalid quote")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.m[q.Symbol]
	if !ok {
		snap = models.NewSecuritySnapshot(q.Symbol, "", q.Price)
	}
	snap.CurrentPrice = q.Price
	snap.Volume += q.Volume

	hist := append(s.prices[q.Symbol], q.Price)
	if len(hist) > priceWindowCap {
		hist = hist[len(hist)-priceWindowCap:]
	}
	s.prices[q.Symbol] = hist

	if len(hist) > rsiPeriod {
		snap.RSI = indicators.RSI(hist, rsiPeriod)
	}
	if rets := indicators.ComputeLogReturns(hist); len(rets) >= volWindow {
		snap.Volatility = indicators.RealizedVolatility(rets, volWindow, obsPerYear)
	}

	s.m[q.Symbol] = snap
	return nil
}

func (s *MemorySnapshotStore) Health(ctx context.Context) error { return nil }

func (s *MemorySnapshotStore) Close() error { return nil }

var _ domrepo.SnapshotStore = (*MemorySnapshotStore)(nil)
