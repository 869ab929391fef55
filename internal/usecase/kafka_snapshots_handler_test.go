package usecase

import (
	"context"
	"fmt"
	"testing"

	"StockPulse/internal/domain/models"
)

type captureStore struct {
	upserts []models.SecuritySnapshot
}

func (s *captureStore) Upsert(ctx context.Context, snap models.SecuritySnapshot) error {
	s.upserts = append(s.upserts, snap)
	return nil
}

func (s *captureStore) Latest(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	for i := len(s.upserts) - 1; i >= 0; i-- {
		if s.upserts[i].Symbol == symbol {
			return s.upserts[i], nil
		}
	}
	return models.SecuritySnapshot{}, fmt.Errorf("no snapshot for %s", symbol)
}

func (s *captureStore) ApplyQuote(ctx context.Context, q *models.Quote) error { return nil }
func (s *captureStore) Health(ctx context.Context) error                      { return nil }
func (s *captureStore) Close() error                                          { return nil }

func TestSnapshotsHandlerUpserts(t *testing.T) {
	store := &captureStore{}
	h := NewKafkaSnapshotsHandler("snapshots", store, nopMetrics{})

	msg := []byte(`{"symbol":"AAPL","company_name":"Apple Inc.","current_price":150.5,"rsi":62.1,"ma50":140}`)
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(store.upserts))
	}
	got := store.upserts[0]
	if got.Symbol != "AAPL" || got.CurrentPrice != 150.5 || got.RSI != 62.1 || got.MA50 != 140 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if !models.IsUnknown(got.MA200) {
		t.Fatalf("absent MA200 should carry the unknown sentinel")
	}
}

func TestSnapshotsHandlerRejectsBadJSON(t *testing.T) {
	h := NewKafkaSnapshotsHandler("snapshots", &captureStore{}, nopMetrics{})
	if err := h.Handle(context.Background(), []byte(`{not json`)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestSnapshotsHandlerSkipsInvalidPayloads(t *testing.T) {
	store := &captureStore{}
	h := NewKafkaSnapshotsHandler("snapshots", store, nopMetrics{})

	cases := []string{
		`{"symbol":"","current_price":10}`,
		`{"symbol":"AAPL","current_price":0}`,
		`{"symbol":"AAPL","current_price":-1}`,
	}
	for _, c := range cases {
		if err := h.Handle(context.Background(), []byte(c)); err != nil {
			t.Fatalf("invalid payload must not be retried: %v", err)
		}
	}
	if len(store.upserts) != 0 {
		t.Fatalf("expected no upserts, got %d", len(store.upserts))
	}
}
