package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	pkgch "StockPulse/pkg/clickhouse"
	applogger "StockPulse/pkg/logger"
)

// CHAnalysisArchive implements ResultArchive backed by ClickHouse. Key scoring
// columns are materialized for SQL-side filtering; the full result rides along
// as a JSON payload so reads reconstruct it losslessly.
type CHAnalysisArchive struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

func NewCHAnalysisArchive(ch *pkgch.Client, table string) *CHAnalysisArchive {
	if table == "" {
		table = "stockpulse.analysis_results"
	}
	return &CHAnalysisArchive{db: ch.DB(), table: table}
}

// SetLogger injects a structured logger.
func (s *CHAnalysisArchive) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHAnalysisArchive) Store(ctx context.Context, r *models.AnalysisResult) error {
	return s.StoreBatch(ctx, []*models.AnalysisResult{r})
}

func (s *CHAnalysisArchive) StoreBatch(ctx context.Context, results []*models.AnalysisResult) error {
	if len(results) == 0 {
		return nil
	}

	start := time.Now()
	values := make([]string, 0, len(results))
	args := make([]interface{}, 0, len(results)*8)
	now := time.Now().UTC()
	for _, r := range results {
		if r == nil || r.Symbol == "" {
			continue
		}
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal result %s: %w", r.Symbol, err)
		}
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			now,
			r.Symbol,
			r.CurrentPrice,
			string(r.Momentum),
			string(r.Sentiment),
			string(r.Recommendation.Action),
			r.Recommendation.Score,
			string(payload),
		)
	}
	if len(values) == 0 {
		return nil
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (ts, symbol, price, momentum, sentiment, action, score, payload) VALUES %s",
		s.table, strings.Join(values, ","),
	)
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		if s.l != nil {
			s.l.Error("clickhouse archive insert error",
				applogger.String("table", s.table),
				applogger.Int("rows", len(values)),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("archive insert: %w", err)
	}
	if s.l != nil {
		s.l.Debug("clickhouse archive insert ok",
			applogger.String("table", s.table),
			applogger.Int("rows", len(values)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return nil
}

func (s *CHAnalysisArchive) Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.AnalysisResult, error) {
	start := time.Now()
	q := fmt.Sprintf(
		"SELECT payload FROM %s WHERE symbol = ? AND ts >= ? AND ts <= ? ORDER BY ts DESC LIMIT ?",
		s.table,
	)
	rows, err := s.db.QueryContext(ctx, q, symbol, from, to, limit)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse archive query error",
				applogger.String("table", s.table),
				applogger.String("symbol", symbol),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("archive query: %w", err)
	}
	defer rows.Close()

	out := make([]*models.AnalysisResult, 0, limit)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan payload: %w", err)
		}
		var r models.AnalysisResult
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("unmarshal payload: %w", err)
		}
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse archive query ok",
			applogger.String("table", s.table),
			applogger.String("symbol", symbol),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHAnalysisArchive) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *CHAnalysisArchive) Close() error {
	return nil // Managed by pkg
}

var _ domrepo.ResultArchive = (*CHAnalysisArchive)(nil)
