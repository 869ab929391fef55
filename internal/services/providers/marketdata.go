package providers

import (
	"context"
	"fmt"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/pkg/config"
)

type HTTPMarketData struct{ base *HTTPServiceBase }

func NewHTTPMarketData(cfg *config.Config) *HTTPMarketData {
	return &HTTPMarketData{base: NewHTTPServiceBase(cfg.Providers.MarketDataURL, cfg.Providers.Timeout)}
}

type snapshotReq struct {
	Symbol string `json:"symbol"`
}

func (p *HTTPMarketData) Snapshot(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	var msg models.SnapshotMessage
	err := p.base.PostJSON(ctx, "/market/snapshot", snapshotReq{Symbol: symbol}, &msg)
	if err != nil {
		return models.SecuritySnapshot{}, fmt.Errorf("post snapshot: %w", err)
	}
	msg.Symbol = symbol
	return msg.ToSnapshot(), nil
}

var _ domsvc.MarketDataProvider = (*HTTPMarketData)(nil)
