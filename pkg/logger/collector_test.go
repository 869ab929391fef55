package logger

import (
	"context"
	"sync"
	"testing"
	"time"
)

type capturePublisher struct {
	mu      sync.Mutex
	topic   string
	batches [][]AggregatedLogEntry
}

func (p *capturePublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	if logs, ok := payload.([]AggregatedLogEntry); ok {
		p.batches = append(p.batches, logs)
	}
	return nil
}

func (p *capturePublisher) batch() ([]AggregatedLogEntry, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.batches) == 0 {
		return nil, "", false
	}
	return p.batches[0], p.topic, true
}

func TestCollectorFlushesOnCountThreshold(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{
		TimeInterval:   time.Hour, // flush only via threshold here
		CountThreshold: 1,
		Topic:          "stockpulse.logs",
		Publisher:      pub,
	})
	defer c.Close()

	c.AddLog("error", "provider timeout", map[string]interface{}{"symbol": "AAPL"}, "providers/base.go:42")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if logs, topic, ok := pub.batch(); ok {
			if topic != "stockpulse.logs" {
				t.Fatalf("unexpected topic: %s", topic)
			}
			if len(logs) != 1 || logs[0].Message != "provider timeout" || logs[0].Count != 1 {
				t.Fatalf("unexpected batch: %+v", logs)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("collector never flushed")
}

func TestCollectorAggregatesDuplicates(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{
		TimeInterval:   50 * time.Millisecond,
		CountThreshold: 100,
		Topic:          "stockpulse.logs",
		Publisher:      pub,
	})
	defer c.Close()

	for i := 0; i < 3; i++ {
		c.AddLog("warn", "cache get error", nil, "handler/api/analysis.go:179")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if logs, _, ok := pub.batch(); ok {
			if len(logs) != 1 || logs[0].Count != 3 {
				t.Fatalf("expected one aggregated entry with count 3, got %+v", logs)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("collector never flushed")
}
