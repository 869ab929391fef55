package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/internal/services/scoring"
)

// SecurityAnalyzer produces the full multi-factor analysis for one security:
// market snapshot, news sentiment, analyst consensus, momentum, technicals,
// and the synthesized recommendation.
type SecurityAnalyzer struct {
	market    domsvc.MarketDataProvider
	news      domsvc.NewsProvider
	scorer    domsvc.SentimentScorer
	analyst   domsvc.AnalystProvider
	snapshots domrepo.SnapshotStore // optional live-updated store; may be nil
	metrics   domrepo.Metrics
	timeout   time.Duration
}

// NewSecurityAnalyzer creates a new SecurityAnalyzer.
func NewSecurityAnalyzer(
	market domsvc.MarketDataProvider,
	news domsvc.NewsProvider,
	scorer domsvc.SentimentScorer,
	analyst domsvc.AnalystProvider,
	snapshots domrepo.SnapshotStore,
	metrics domrepo.Metrics,
) *SecurityAnalyzer {
	return &SecurityAnalyzer{
		market:    market,
		news:      news,
		scorer:    scorer,
		analyst:   analyst,
		snapshots: snapshots,
		metrics:   metrics,
		timeout:   10 * time.Second,
	}
}

// AnalyzeParams are the inputs for a single-security analysis.
type AnalyzeParams struct {
	Symbol           string
	Headlines        int
	IncludeHeadlines bool
}

// Analyze gathers the collaborator inputs concurrently and synthesizes the
// recommendation. A snapshot failure fails the call; sentiment degrades to
// Neutral and analyst data degrades to the Hold default.
func (uc *SecurityAnalyzer) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisResult, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if p.Headlines <= 0 {
		p.Headlines = 10
	}

	// Overall timeout
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()

	type item struct {
		name string
		val  interface{}
		err  error
	}
	ch := make(chan item, 3)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.snapshot(ctx, p.Symbol)
		ch <- item{"snapshot", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		heads, summary, err := uc.sentiment(ctx, p.Symbol, p.Headlines)
		ch <- item{"sentiment", sentimentItem{heads, summary}, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.analyst.Consensus(ctx, p.Symbol)
		ch <- item{"analyst", v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	var (
		snap      models.SecuritySnapshot
		headlines []models.Headline
		summary   models.SentimentSummary
		consensus = models.DefaultAnalystConsensus()
		snapErr   error
	)
	summary.Sentiment = models.SentimentNeutral

	for it := range ch {
		switch it.name {
		case "snapshot":
			if it.err != nil {
				snapErr = it.err
				continue
			}
			snap = it.val.(models.SecuritySnapshot)
		case "sentiment":
			if it.err != nil {
				uc.metrics.RecordError("sentiment")
				continue
			}
			si := it.val.(sentimentItem)
			headlines = si.headlines
			summary = si.summary
		case "analyst":
			if it.err != nil {
				uc.metrics.RecordError("analyst")
				continue
			}
			consensus = it.val.(models.AnalystConsensus)
		}
	}

	if snapErr != nil {
		uc.metrics.RecordError("snapshot")
		return nil, fmt.Errorf("snapshot %s: %w", p.Symbol, snapErr)
	}

	momentum := scoring.ClassifyMomentum(snap.MA50, snap.MA200, snap.CurrentPrice, snap.RSI, snap.Volatility)
	technical := scoring.ScoreTechnicals(snap)
	rec := scoring.Synthesize(momentum, summary.Sentiment, consensus.Score, technical, snap.Changes)

	res := &models.AnalysisResult{
		Symbol:            snap.Symbol,
		CompanyName:       snap.CompanyName,
		CurrentPrice:      snap.CurrentPrice,
		MA20:              models.NullableFloat(snap.MA20),
		MA50:              models.NullableFloat(snap.MA50),
		MA200:             models.NullableFloat(snap.MA200),
		RSI:               snap.RSI,
		Volatility:        snap.Volatility,
		Volume:            snap.Volume,
		AvgVolume:         snap.AvgVolume,
		Momentum:          momentum,
		Sentiment:         summary.Sentiment,
		SentimentScore:    summary.CompoundScore,
		AnalystConsensus:  consensus.Consensus,
		AnalystScore:      consensus.Score,
		TechnicalAnalysis: technical,
		Recommendation:    rec,
		PriceChanges:      snap.Changes,
	}
	if p.IncludeHeadlines {
		res.Headlines = headlines
	}

	uc.metrics.RecordRecommendation(res.Symbol, string(rec.Action))
	uc.metrics.RecordScore(res.Symbol, rec.Score)
	uc.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	return res, nil
}

type sentimentItem struct {
	headlines []models.Headline
	summary   models.SentimentSummary
}

// snapshot prefers the live-updated store and falls back to the market-data
// collaborator, warming the store on the way back.
func (uc *SecurityAnalyzer) snapshot(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	if uc.snapshots != nil {
		if s, err := uc.snapshots.Latest(ctx, symbol); err == nil {
			return s, nil
		}
	}
	s, err := uc.market.Snapshot(ctx, symbol)
	if err != nil {
		return models.SecuritySnapshot{}, err
	}
	if uc.snapshots != nil {
		_ = uc.snapshots.Upsert(ctx, s)
	}
	return s, nil
}

func (uc *SecurityAnalyzer) sentiment(ctx context.Context, symbol string, limit int) ([]models.Headline, models.SentimentSummary, error) {
	heads, err := uc.news.Headlines(ctx, symbol, limit)
	if err != nil {
		return nil, models.SentimentSummary{}, fmt.Errorf("headlines: %w", err)
	}
	if len(heads) == 0 {
		return nil, scoring.AggregateSentiment(nil), nil
	}
	texts := make([]string, 0, len(heads))
	for _, h := range heads {
		texts = append(texts, h.Title)
	}
	scores, err := uc.scorer.Score(ctx, texts)
	if err != nil {
		return heads, models.SentimentSummary{}, fmt.Errorf("score: %w", err)
	}
	return heads, scoring.AggregateSentiment(scores), nil
}
