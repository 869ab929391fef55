package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

// flakyStream fails its first read session and serves a quote on the second.
type flakyStream struct {
	mu         sync.Mutex
	reads      int
	reconnects int
	connected  bool
}

func (s *flakyStream) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	return nil
}

func (s *flakyStream) Subscribe(ctx context.Context) error { return nil }

func (s *flakyStream) Read(ctx context.Context) (<-chan *models.Quote, <-chan error) {
	s.mu.Lock()
	s.reads++
	n := s.reads
	s.mu.Unlock()

	quotes := make(chan *models.Quote, 8)
	errs := make(chan error, 1)
	if n == 1 {
		errs <- fmt.Errorf("connection reset")
		close(errs)
		close(quotes)
	} else {
		quotes <- &models.Quote{Symbol: "AAPL", Timestamp: time.Now().Unix(), Price: 151, Volume: 10}
	}
	return quotes, errs
}

func (s *flakyStream) Reconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconnects++
	s.connected = true
	return nil
}

func (s *flakyStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}

func (s *flakyStream) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *flakyStream) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads, s.reconnects
}

// recordingStore captures applied quotes.
type recordingStore struct {
	mu     sync.Mutex
	quotes []*models.Quote
}

func (s *recordingStore) Upsert(ctx context.Context, snap models.SecuritySnapshot) error { return nil }

func (s *recordingStore) Latest(ctx context.Context, symbol string) (models.SecuritySnapshot, error) {
	return models.SecuritySnapshot{}, fmt.Errorf("no snapshot for %s", symbol)
}

func (s *recordingStore) ApplyQuote(ctx context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, q)
	return nil
}

func (s *recordingStore) Health(ctx context.Context) error { return nil }
func (s *recordingStore) Close() error                     { return nil }

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

func TestQuoteCollectorConsumesAfterReconnect(t *testing.T) {
	stream := &flakyStream{}
	store := &recordingStore{}
	collector := NewQuoteCollector(stream, NewQuoteApplier(store, nopMetrics{}), nopMetrics{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := collector.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if store.count() == 1 {
			reads, reconnects := stream.counts()
			if reconnects < 1 {
				t.Fatalf("expected a reconnect before the quote, got %d", reconnects)
			}
			if reads < 2 {
				t.Fatalf("expected a fresh read after reconnect, got %d reads", reads)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("quote was never applied after reconnect; applied=%d", store.count())
}
