package usecase

import (
	"context"
	"encoding/json"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	pkgkafka "StockPulse/pkg/kafka"
)

// KafkaSnapshotsHandler consumes snapshot updates from Kafka and upserts them
// into the snapshot store, keeping analysis inputs fresh without polling the
// market-data collaborator.
type KafkaSnapshotsHandler struct {
	topic   string
	store   domrepo.SnapshotStore
	metrics domrepo.Metrics
}

func NewKafkaSnapshotsHandler(topic string, store domrepo.SnapshotStore, metrics domrepo.Metrics) *KafkaSnapshotsHandler {
	return &KafkaSnapshotsHandler{topic: topic, store: store, metrics: metrics}
}

func (h *KafkaSnapshotsHandler) Topic() string { return h.topic }

// Handle decodes a SnapshotMessage and upserts it with defaults applied.
func (h *KafkaSnapshotsHandler) Handle(ctx context.Context, b []byte) error {
	var m models.SnapshotMessage
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}
	if m.Symbol == "" || m.CurrentPrice <= 0 {
		h.metrics.RecordError("consumer_invalid")
		return nil // malformed but not retryable
	}

	start := time.Now()
	err := h.store.Upsert(ctx, m.ToSnapshot())
	h.metrics.RecordLatency("snapshot_upsert_seconds", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordLastPrice(m.Symbol, m.CurrentPrice)
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaSnapshotsHandler)(nil)
