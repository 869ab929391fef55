package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"StockPulse/internal/domain/models"
)

type fakeMarket struct {
	snap models.SecuritySnapshot
	err  error
}

func (f *fakeMarket) Snapshot(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	return f.snap, f.err
}

type fakeNews struct {
	heads []models.Headline
	err   error
}

func (f *fakeNews) Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	return f.heads, f.err
}

type fakeScorer struct {
	scores []models.PolarityScore
	err    error
}

func (f *fakeScorer) Score(ctx context.Context, texts []string) ([]models.PolarityScore, error) {
	return f.scores, f.err
}

type fakeAnalyst struct {
	consensus models.AnalystConsensus
	err       error
}

func (f *fakeAnalyst) Consensus(ctx context.Context, symbol string) (models.AnalystConsensus, error) {
	return f.consensus, f.err
}

type nopMetrics struct{}

func (nopMetrics) RecordRecommendation(string, string) {}
func (nopMetrics) RecordError(string)                  {}
func (nopMetrics) RecordScore(string, float64)         {}
func (nopMetrics) RecordLastPrice(string, float64)     {}
func (nopMetrics) RecordLatency(string, float64)       {}

func bullishSnapshot() models.SecuritySnapshot {
	s := models.NewSecuritySnapshot("AAPL", "Apple Inc.", 150)
	s.MA20 = 145
	s.MA50 = 140
	s.MA200 = 130
	s.RSI = 60
	s.Volatility = 0.02
	s.Volume = 2_000_000
	s.AvgVolume = 1_000_000
	s.Changes = models.PriceChanges{OneDay: 3, FiveDay: 6}
	return s
}

func newTestAnalyzer(market *fakeMarket, news *fakeNews, scorer *fakeScorer, analyst *fakeAnalyst) *SecurityAnalyzer {
	return NewSecurityAnalyzer(market, news, scorer, analyst, nil, nopMetrics{})
}

func TestAnalyzeBullishSecurity(t *testing.T) {
	market := &fakeMarket{snap: bullishSnapshot()}
	news := &fakeNews{heads: []models.Headline{{Title: "Record quarter"}, {Title: "Guidance raised"}}}
	scorer := &fakeScorer{scores: []models.PolarityScore{{Compound: 0.3}, {Compound: 0.3}}}
	analyst := &fakeAnalyst{consensus: models.AnalystConsensus{Consensus: models.ConsensusBuy, Score: 0.8, Count: 12}}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	res, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Momentum != models.MomentumStrongBullish {
		t.Fatalf("expected Strong Bullish momentum, got %s", res.Momentum)
	}
	if res.Sentiment != models.SentimentVeryPositive {
		t.Fatalf("expected Very Positive sentiment, got %s", res.Sentiment)
	}
	if res.AnalystConsensus != models.ConsensusBuy || res.AnalystScore != 0.8 {
		t.Fatalf("unexpected analyst echo: %s %v", res.AnalystConsensus, res.AnalystScore)
	}
	if res.TechnicalAnalysis.Score != 3.0 {
		t.Fatalf("expected technical score 3.0, got %v", res.TechnicalAnalysis.Score)
	}
	// 0.25*2 + 0.20*2 + 0.20*0.8 + 0.25*3 + 0.10*0.8 = 1.89
	if res.Recommendation.Action != models.ActionStrongBuy {
		t.Fatalf("expected Strong Buy, got %s (score %v)", res.Recommendation.Action, res.Recommendation.Score)
	}
	if res.Recommendation.Confidence != models.ConfidenceHigh {
		t.Fatalf("expected High confidence, got %s", res.Recommendation.Confidence)
	}
	if res.Headlines != nil {
		t.Fatalf("headlines should be omitted unless requested")
	}
}

func TestAnalyzeIncludesHeadlinesWhenRequested(t *testing.T) {
	market := &fakeMarket{snap: bullishSnapshot()}
	news := &fakeNews{heads: []models.Headline{{Title: "Record quarter"}}}
	scorer := &fakeScorer{scores: []models.PolarityScore{{Compound: 0.1}}}
	analyst := &fakeAnalyst{consensus: models.DefaultAnalystConsensus()}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	res, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL", IncludeHeadlines: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Headlines) != 1 || res.Headlines[0].Title != "Record quarter" {
		t.Fatalf("expected echoed headlines, got %v", res.Headlines)
	}
}

func TestAnalyzeSnapshotErrorFails(t *testing.T) {
	market := &fakeMarket{err: fmt.Errorf("upstream down")}
	news := &fakeNews{}
	scorer := &fakeScorer{}
	analyst := &fakeAnalyst{consensus: models.DefaultAnalystConsensus()}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	if _, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"}); err == nil {
		t.Fatalf("expected error when snapshot fetch fails")
	}
}

func TestAnalyzeSentimentDegradesToNeutral(t *testing.T) {
	market := &fakeMarket{snap: bullishSnapshot()}
	news := &fakeNews{err: fmt.Errorf("news service down")}
	scorer := &fakeScorer{}
	analyst := &fakeAnalyst{consensus: models.DefaultAnalystConsensus()}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	res, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sentiment != models.SentimentNeutral || res.SentimentScore != 0 {
		t.Fatalf("expected neutral degradation, got %s %v", res.Sentiment, res.SentimentScore)
	}
}

func TestAnalyzeAnalystDegradesToHold(t *testing.T) {
	market := &fakeMarket{snap: bullishSnapshot()}
	news := &fakeNews{}
	scorer := &fakeScorer{}
	analyst := &fakeAnalyst{err: fmt.Errorf("analyst service down")}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	res, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AnalystConsensus != models.ConsensusHold || res.AnalystScore != 0 {
		t.Fatalf("expected Hold default, got %s %v", res.AnalystConsensus, res.AnalystScore)
	}
}

func TestAnalyzePriceOnlySnapshotSerializes(t *testing.T) {
	market := &fakeMarket{snap: models.NewSecuritySnapshot("X", "X Corp", 100)}
	news := &fakeNews{}
	scorer := &fakeScorer{}
	analyst := &fakeAnalyst{consensus: models.DefaultAnalystConsensus()}

	uc := newTestAnalyzer(market, news, scorer, analyst)
	res, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Momentum != models.MomentumNeutral {
		t.Fatalf("unknown MAs should classify Neutral, got %s", res.Momentum)
	}
	if res.MA50 != nil {
		t.Fatalf("unknown ma50 should echo as nil")
	}
	if _, err := json.Marshal(res); err != nil {
		t.Fatalf("price-only result must serialize: %v", err)
	}
}

func TestAnalyzeEmptySymbol(t *testing.T) {
	uc := newTestAnalyzer(&fakeMarket{}, &fakeNews{}, &fakeScorer{}, &fakeAnalyst{})
	if _, err := uc.Analyze(context.Background(), AnalyzeParams{}); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
}
