package usecase

import (
	"context"
	"time"

	pkgcache "StockPulse/pkg/cache"
	"StockPulse/pkg/logger"
	"StockPulse/pkg/queue"
)

const refreshLockKey = "refresh:portfolio"

// RefreshJob re-analyzes the configured watchlist when a refresh message is
// published. A distributed lock keeps concurrent instances from duplicating
// the work.
type RefreshJob struct {
	portfolio *PortfolioAnalyzeUseCase
	locks     pkgcache.Service
	logger    *logger.Logger
	symbols   []string
	lockTTL   time.Duration
}

func NewRefreshJob(portfolio *PortfolioAnalyzeUseCase, locks pkgcache.Service, lgr *logger.Logger, symbols []string, lockTTL time.Duration) *RefreshJob {
	if lockTTL <= 0 {
		lockTTL = 2 * time.Minute
	}
	return &RefreshJob{portfolio: portfolio, locks: locks, logger: lgr, symbols: symbols, lockTTL: lockTTL}
}

func (j *RefreshJob) Name() string { return "analysis_refresh" }

func (j *RefreshJob) Type() string { return "analysis.refresh" }

// refreshPayload optionally narrows the refresh to specific symbols.
type refreshPayload struct {
	Symbols []string `json:"symbols"`
}

func (j *RefreshJob) Handle(ctx context.Context, payload interface{}) error {
	symbols := j.symbols
	if payload != nil {
		if p, err := queue.ParsePayload[refreshPayload](payload); err == nil && len(p.Symbols) > 0 {
			symbols = p.Symbols
		}
	}
	if len(symbols) == 0 {
		return nil
	}

	if j.locks != nil {
		ok, err := j.locks.TryLock(ctx, refreshLockKey, j.lockTTL)
		if err != nil {
			j.logger.Warn("refresh lock unavailable", logger.Error(err))
		} else if !ok {
			j.logger.Debug("refresh already running, skipping")
			return nil
		} else {
			defer func() { _ = j.locks.Unlock(context.Background(), refreshLockKey) }()
		}
	}

	start := time.Now()
	pa, err := j.portfolio.Analyze(ctx, symbols)
	if err != nil {
		j.logger.Error("refresh failed", logger.Error(err))
		return err
	}
	j.logger.Info("refresh complete",
		logger.Int("symbols", len(symbols)),
		logger.Int("analyzed", len(pa.Results)),
		logger.Int("failed", len(pa.Errors)),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

var _ queue.Job = (*RefreshJob)(nil)
