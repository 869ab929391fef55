package models

// MomentumLabel is the five-way discrete momentum classification.
type MomentumLabel string

const (
	MomentumStrongBullish MomentumLabel = "Strong Bullish"
	MomentumBullish       MomentumLabel = "Bullish"
	MomentumNeutral       MomentumLabel = "Neutral"
	MomentumBearish       MomentumLabel = "Bearish"
	MomentumStrongBearish MomentumLabel = "Strong Bearish"
)

// Trend is the overall technical trend derived from the technical score.
type Trend string

const (
	TrendUp       Trend = "Uptrend"
	TrendDown     Trend = "Downtrend"
	TrendSideways Trend = "Sideways"
)

// TechnicalAnalysis carries the accumulated technical score, the ordered
// human-readable signal tags, the raw RSI, and the derived trend.
type TechnicalAnalysis struct {
	Score   float64  `json:"score"`
	Signals []string `json:"signals"`
	RSI     float64  `json:"rsi"`
	Trend   Trend    `json:"trend"`
}

// Consensus is the categorical analyst consensus.
type Consensus string

const (
	ConsensusBuy  Consensus = "Buy"
	ConsensusHold Consensus = "Hold"
	ConsensusSell Consensus = "Sell"
)

// AnalystConsensus summarizes external analyst opinion for one security.
// Score is normalized to [-1, 1].
type AnalystConsensus struct {
	Consensus Consensus `json:"consensus"`
	Score     float64   `json:"score"`
	Count     int       `json:"count"`
}

// DefaultAnalystConsensus is the documented fallback when analyst data is
// unavailable for a symbol.
func DefaultAnalystConsensus() AnalystConsensus {
	return AnalystConsensus{Consensus: ConsensusHold, Score: 0, Count: 0}
}

// Action is the discrete recommendation action.
type Action string

const (
	ActionStrongBuy       Action = "Strong Buy"
	ActionBuy             Action = "Buy"
	ActionHold            Action = "Hold"
	ActionConsiderSelling Action = "Consider Selling"
	ActionStrongSell      Action = "Strong Sell"
)

// Confidence is the recommendation confidence level.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
)

// Recommendation is the synthesized action with its confidence, canned
// rationale, and the raw weighted total for display and testing.
type Recommendation struct {
	Action     Action     `json:"action"`
	Confidence Confidence `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
	Score      float64    `json:"score"`
}

// AnalysisResult is the per-ticker aggregate of all derived signals plus
// echoed snapshot fields. Pure value; no references back into the engine.
// The moving averages are pointers because the in-memory unknown sentinel is
// NaN, which encoding/json rejects; unknown marshals as null instead.
type AnalysisResult struct {
	Symbol            string            `json:"symbol"`
	CompanyName       string            `json:"company_name"`
	CurrentPrice      float64           `json:"current_price"`
	MA20              *float64          `json:"ma20"`
	MA50              *float64          `json:"ma50"`
	MA200             *float64          `json:"ma200"`
	RSI               float64           `json:"rsi"`
	Volatility        float64           `json:"volatility"`
	Volume            float64           `json:"volume"`
	AvgVolume         float64           `json:"avg_volume"`
	Momentum          MomentumLabel     `json:"momentum"`
	Sentiment         Sentiment         `json:"sentiment"`
	SentimentScore    float64           `json:"sentiment_score"`
	AnalystConsensus  Consensus         `json:"analyst_consensus"`
	AnalystScore      float64           `json:"analyst_score"`
	TechnicalAnalysis TechnicalAnalysis `json:"technical_analysis"`
	Recommendation    Recommendation    `json:"recommendation"`
	PriceChanges      PriceChanges      `json:"price_changes"`
	Headlines         []Headline        `json:"headlines,omitempty"`
}

// PortfolioMetrics is the portfolio-level rollup over a set of
// AnalysisResults. Recomputed wholesale each call; the zero value is the
// empty-portfolio sentinel (TotalSecurities == 0).
type PortfolioMetrics struct {
	TotalSecurities int     `json:"total_securities"`
	StrongBuy       int     `json:"strong_buy_recommendations"`
	Buy             int     `json:"buy_recommendations"`
	Hold            int     `json:"hold_recommendations"`
	Sell            int     `json:"sell_recommendations"`
	StrongSell      int     `json:"strong_sell_recommendations"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	StrongBullish   int     `json:"strong_bullish_momentum"`
	Bullish         int     `json:"bullish_momentum"`
	NeutralMomentum int     `json:"neutral_momentum"`
	Bearish         int     `json:"bearish_momentum"`
	StrongBearish   int     `json:"strong_bearish_momentum"`
	Uptrend         int     `json:"uptrend_count"`
	Downtrend       int     `json:"downtrend_count"`
	Sideways        int     `json:"sideways_count"`
}
