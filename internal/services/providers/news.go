package providers

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/pkg/config"
)

type HTTPNews struct{ base *HTTPServiceBase }

func NewHTTPNews(cfg *config.Config) *HTTPNews {
	return &HTTPNews{base: NewHTTPServiceBase(cfg.Providers.NewsURL, cfg.Providers.Timeout)}
}

type newsReq struct {
	Symbol string `json:"symbol"`
	Limit  int    `json:"limit"`
}

type newsItem struct {
	Title     string `json:"title"`
	Published int64  `json:"published"`
}

type newsResp struct {
	Headlines []newsItem `json:"headlines"`
}

func (p *HTTPNews) Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	var nr newsResp
	err := p.base.PostJSON(ctx, "/news/headlines", newsReq{Symbol: symbol, Limit: limit}, &nr)
	if err != nil {
		return nil, fmt.Errorf("post headlines: %w", err)
	}
	out := make([]models.Headline, 0, len(nr.Headlines))
	for _, h := range nr.Headlines {
		out = append(out, models.Headline{
			Title:     h.Title,
			Published: time.Unix(h.Published, 0).UTC().Format(time.RFC3339),
		})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ domsvc.NewsProvider = (*HTTPNews)(nil)
