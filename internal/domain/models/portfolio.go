package models

import "time"

// PortfolioAnalysis is the consolidated output of one portfolio pass:
// per-ticker results, the metrics rollup, and per-ticker failures.
// Note: no transport (json/http) concerns here beyond field tags.
type PortfolioAnalysis struct {
	Timestamp time.Time                 `json:"timestamp"`
	Results   map[string]AnalysisResult `json:"results"`
	Metrics   PortfolioMetrics          `json:"metrics"`
	Errors    map[string]string         `json:"errors,omitempty"`
}
