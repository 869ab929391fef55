package providers

import (
	"context"
	"fmt"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/pkg/config"
)

type HTTPAnalyst struct{ base *HTTPServiceBase }

func NewHTTPAnalyst(cfg *config.Config) *HTTPAnalyst {
	return &HTTPAnalyst{base: NewHTTPServiceBase(cfg.Providers.AnalystURL, cfg.Providers.Timeout)}
}

type analystReq struct {
	Symbol string `json:"symbol"`
}

type analystResp struct {
	Consensus string  `json:"consensus"`
	Score     float64 `json:"score"`
	Count     int     `json:"count"`
}

func (p *HTTPAnalyst) Consensus(ctx context.Context, symbol string) (models.AnalystConsensus, error) {
	var ar analystResp
	err := p.base.PostJSON(ctx, "/analyst/consensus", analystReq{Symbol: symbol}, &ar)
	if err != nil {
		return models.AnalystConsensus{}, fmt.Errorf("post analyst: %w", err)
	}
	c := models.Consensus(ar.Consensus)
	switch c {
	case models.ConsensusBuy, models.ConsensusHold, models.ConsensusSell:
	default:
		return models.AnalystConsensus{}, fmt.Errorf("unknown analyst consensus %q", ar.Consensus)
	}
	return models.AnalystConsensus{Consensus: c, Score: ar.Score, Count: ar.Count}, nil
}

var _ domsvc.AnalystProvider = (*HTTPAnalyst)(nil)
