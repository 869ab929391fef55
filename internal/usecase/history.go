package usecase

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
)

// HistoryUseCase provides business logic for retrieving archived analyses.
type HistoryUseCase struct {
	archive domrepo.ResultArchive
}

func NewHistoryUseCase(archive domrepo.ResultArchive) *HistoryUseCase {
	return &HistoryUseCase{archive: archive}
}

type GetHistoryParams struct {
	Symbol string
	From   time.Time
	To     time.Time
	Limit  int
}

type GetHistoryResult struct {
	Symbol  string
	From    time.Time
	To      time.Time
	Count   int
	Results []*models.AnalysisResult
}

func (uc *HistoryUseCase) GetHistory(ctx context.Context, p GetHistoryParams) (*GetHistoryResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.From.After(p.To) {
		return nil, fmt.Errorf("from must be <= to")
	}
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 10000 {
		p.Limit = 10000
	}

	results, err := uc.archive.Query(ctx, p.Symbol, p.From, p.To, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return &GetHistoryResult{
		Symbol:  p.Symbol,
		From:    p.From,
		To:      p.To,
		Count:   len(results),
		Results: results,
	}, nil
}
