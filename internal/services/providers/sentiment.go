package providers

import (
	"context"
	"fmt"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/pkg/config"
)

type HTTPSentimentScorer struct{ base *HTTPServiceBase }

func NewHTTPSentimentScorer(cfg *config.Config) *HTTPSentimentScorer {
	return &HTTPSentimentScorer{base: NewHTTPServiceBase(cfg.Providers.SentimentURL, cfg.Providers.Timeout)}
}

type sentimentReq struct {
	Texts []string `json:"texts"`
}

type sentimentResp struct {
	Scores []models.PolarityScore `json:"scores"`
}

// Score returns one polarity score per input text, in input order.
func (p *HTTPSentimentScorer) Score(ctx context.Context, texts []string) ([]models.PolarityScore, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var sr sentimentResp
	err := p.base.PostJSONWithRetry(ctx, "/sentiment/score", sentimentReq{Texts: texts}, &sr, 3)
	if err != nil {
		return nil, fmt.Errorf("post sentiment: %w", err)
	}
	if len(sr.Scores) != len(texts) {
		return nil, fmt.Errorf("sentiment scorer returned %d scores for %d texts", len(sr.Scores), len(texts))
	}
	return sr.Scores, nil
}

var _ domsvc.SentimentScorer = (*HTTPSentimentScorer)(nil)
