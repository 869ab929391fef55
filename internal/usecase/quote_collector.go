package usecase

import (
	"context"
	"time"

	"StockPulse/internal/domain/models"
	drepo "StockPulse/internal/domain/repository"
	mid "StockPulse/internal/middleware"
)

// QuoteApplier feeds live quotes into the snapshot store so that analysis
// always sees the latest price and intraday volume.
type QuoteApplier struct {
	store   drepo.SnapshotStore
	metrics drepo.Metrics
}

func NewQuoteApplier(store drepo.SnapshotStore, metrics drepo.Metrics) *QuoteApplier {
	return &QuoteApplier{store: store, metrics: metrics}
}

func (a *QuoteApplier) Process(ctx context.Context, q *models.Quote) error {
	if err := a.store.ApplyQuote(ctx, q); err != nil {
		a.metrics.RecordError("quote_apply")
		return err
	}
	return nil
}

// QuoteCollector collects quotes from the market feed and applies them.
type QuoteCollector struct {
	stream  drepo.QuoteStream
	applier *QuoteApplier
	metrics drepo.Metrics
	pipe    *mid.QuotePipeline
}

// NewQuoteCollector creates a new QuoteCollector instance.
func NewQuoteCollector(stream drepo.QuoteStream, applier *QuoteApplier, metrics drepo.Metrics, pipe *mid.QuotePipeline) *QuoteCollector {
	return &QuoteCollector{stream: stream, applier: applier, metrics: metrics, pipe: pipe}
}

// IsConnected returns true if the market feed is connected.
func (c *QuoteCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *QuoteCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	if c.pipe != nil {
		c.pipe.Start(ctx)
	}
	qCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, qCh, errCh)
	return nil
}

func (c *QuoteCollector) consume(ctx context.Context, qCh <-chan *models.Quote, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errCh:
			// A stream error or a closed error channel both mean the read
			// loop is gone; fresh channels come from a new Read.
			if !ok || err != nil {
				c.metrics.RecordError("stream")
				if qCh, errCh = c.reopen(ctx); qCh == nil {
					return
				}
			}
		case q, ok := <-qCh:
			if !ok {
				if qCh, errCh = c.reopen(ctx); qCh == nil {
					return
				}
				continue
			}
			if q == nil {
				continue
			}
			if c.pipe != nil {
				_ = c.pipe.Process(ctx, q)
			} else {
				_ = c.applier.Process(ctx, q)
			}
			c.metrics.RecordLastPrice(q.Symbol, q.Price)
		}
	}
}

// reopen reconnects the stream and starts a new read, retrying with a delay
// until it succeeds or the context ends. Returns nil channels on shutdown.
func (c *QuoteCollector) reopen(ctx context.Context) (<-chan *models.Quote, <-chan error) {
	for {
		if ctx.Err() != nil {
			return nil, nil
		}
		if err := c.stream.Reconnect(ctx); err != nil {
			c.metrics.RecordError("reconnect")
			select {
			case <-ctx.Done():
				return nil, nil
			case <-time.After(time.Second):
			}
			continue
		}
		return c.stream.Read(ctx)
	}
}

func (c *QuoteCollector) Stop() error { return c.stream.Close() }

// Shutdown stops the pipeline and closes the feed.
func (c *QuoteCollector) Shutdown(ctx context.Context) error {
	if c.pipe != nil {
		c.pipe.Stop()
	}
	return c.stream.Close()
}
