package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StockPulse/internal/domain/models"
	drepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/scoring"
)

// PortfolioAnalyzeUseCase runs per-symbol analyses with bounded concurrency
// and rolls them up into portfolio metrics. Per-symbol failures are reported
// alongside the successes instead of failing the whole portfolio.
type PortfolioAnalyzeUseCase struct {
	analyzer *SecurityAnalyzer
	proc     *ResultProcessor // optional; persists successful results
	metrics  drepo.Metrics
	workers  int
}

func NewPortfolioAnalyzeUseCase(analyzer *SecurityAnalyzer, proc *ResultProcessor, metrics drepo.Metrics, workers int) *PortfolioAnalyzeUseCase {
	if workers <= 0 {
		workers = 5
	}
	return &PortfolioAnalyzeUseCase{analyzer: analyzer, proc: proc, metrics: metrics, workers: workers}
}

// Analyze analyzes every symbol and aggregates the portfolio rollup.
func (uc *PortfolioAnalyzeUseCase) Analyze(ctx context.Context, symbols []string) (*models.PortfolioAnalysis, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("symbols required")
	}

	start := time.Now()

	type item struct {
		symbol string
		res    *models.AnalysisResult
		err    error
	}
	ch := make(chan item, len(symbols))
	sem := make(chan struct{}, uc.workers)
	var wg sync.WaitGroup

	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}

		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			res, err := uc.analyzer.Analyze(ctx, AnalyzeParams{Symbol: symbol})
			ch <- item{symbol, res, err}
		}(s)
	}

	go func() { wg.Wait(); close(ch) }()

	pa := &models.PortfolioAnalysis{
		Timestamp: time.Now().UTC(),
		Results:   map[string]models.AnalysisResult{},
		Errors:    map[string]string{},
	}
	var persisted []*models.AnalysisResult
	for it := range ch {
		if it.err != nil {
			pa.Errors[it.symbol] = it.err.Error()
			continue
		}
		pa.Results[it.symbol] = *it.res
		persisted = append(persisted, it.res)
	}
	if len(pa.Errors) == 0 {
		pa.Errors = nil
	}

	pa.Metrics = scoring.AggregatePortfolio(pa.Results)

	if uc.proc != nil && len(persisted) > 0 {
		if err := uc.proc.ProcessBatch(ctx, persisted); err != nil {
			uc.metrics.RecordError("portfolio_persist")
		}
	}

	uc.metrics.RecordLatency("portfolio_analyze", time.Since(start).Seconds())
	return pa, nil
}
