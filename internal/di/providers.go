package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"StockPulse/internal/domain/repository"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/internal/handler/api"
	mid "StockPulse/internal/middleware"
	internalrepo "StockPulse/internal/repository"
	icache "StockPulse/internal/service/cache"
	"StockPulse/internal/service/quotefeed"
	"StockPulse/internal/services/providers"
	"StockPulse/internal/usecase"
	pkgcache "StockPulse/pkg/cache"
	pkgch "StockPulse/pkg/clickhouse"
	"StockPulse/pkg/config"
	pkgkafka "StockPulse/pkg/kafka"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/queue"
	"StockPulse/pkg/server"
)

// logPublisher adapts the Kafka producer to the log collector contract.
type logPublisher struct {
	p *pkgkafka.Producer
}

func (lp logPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return lp.p.Publish(ctx, topic, nil, payload)
}

// ProvideLogger creates the application logger. When kafka.logs_topic is set,
// an aggregating collector ships deduplicated log entries to that topic.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, err
	}
	if cfg.Kafka.LogsTopic != "" && producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Kafka.LogsTopic,
			Publisher:      logPublisher{p: producer},
		})
	}
	return l, nil
}

// ProvideClickHouseClient creates a ClickHouse client and initializes schema.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := cfg.ClickHouse.Database
	if db == "" {
		db = "stockpulse"
	}
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + db,
		"CREATE TABLE IF NOT EXISTS " + db + `.analysis_results (
            ts DateTime,
            symbol String,
            price Float64,
            momentum String,
            sentiment String,
            action String,
            score Float64,
            payload String
        ) ENGINE=MergeTree ORDER BY (symbol, ts)`,
	}); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSnapshotStore creates the in-memory snapshot store.
func ProvideSnapshotStore() repository.SnapshotStore {
	return internalrepo.NewMemorySnapshotStore()
}

// ProvideResultArchive creates the ClickHouse analysis archive.
func ProvideResultArchive(chClient *pkgch.Client, cfg *config.Config) repository.ResultArchive {
	db := cfg.ClickHouse.Database
	if db == "" {
		db = "stockpulse"
	}
	return internalrepo.NewCHAnalysisArchive(chClient, db+".analysis_results")
}

// ProvideResultPublisher creates the Kafka result publisher.
func ProvideResultPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideQuoteStream creates the WebSocket quote feed.
func ProvideQuoteStream(cfg *config.Config) repository.QuoteStream {
	return quotefeed.New(
		cfg.MarketFeed.APIKey,
		cfg.MarketFeed.WebSocketURL,
		cfg.MarketFeed.Symbols,
		cfg.MarketFeed.ReconnectDelay,
		cfg.MarketFeed.PingInterval,
	)
}

// ProvideMarketDataProvider creates the market-data HTTP client.
func ProvideMarketDataProvider(cfg *config.Config) domsvc.MarketDataProvider {
	return providers.NewHTTPMarketData(cfg)
}

// ProvideNewsProvider creates the news HTTP client.
func ProvideNewsProvider(cfg *config.Config) domsvc.NewsProvider {
	return providers.NewHTTPNews(cfg)
}

// ProvideSentimentScorer creates the sentiment-scoring HTTP client.
func ProvideSentimentScorer(cfg *config.Config) domsvc.SentimentScorer {
	return providers.NewHTTPSentimentScorer(cfg)
}

// ProvideAnalystProvider creates the analyst-consensus HTTP client.
func ProvideAnalystProvider(cfg *config.Config) domsvc.AnalystProvider {
	return providers.NewHTTPAnalyst(cfg)
}

// ProvideSecurityAnalyzer creates the single-security analyzer.
func ProvideSecurityAnalyzer(
	market domsvc.MarketDataProvider,
	news domsvc.NewsProvider,
	scorer domsvc.SentimentScorer,
	analyst domsvc.AnalystProvider,
	snapshots repository.SnapshotStore,
	m repository.Metrics,
) *usecase.SecurityAnalyzer {
	return usecase.NewSecurityAnalyzer(market, news, scorer, analyst, snapshots, m)
}

// ProvideResultProcessor creates the result processor use case.
func ProvideResultProcessor(
	pub repository.Publisher,
	archive repository.ResultArchive,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.ResultProcessor {
	return usecase.NewResultProcessor(
		pub,
		archive,
		m,
		cfg.Backend.Type,
		cfg.Backend.BatchSize,
		cfg.Backend.BatchTimeout,
	)
}

// ProvidePortfolioAnalyzer creates the portfolio analyzer use case.
func ProvidePortfolioAnalyzer(
	analyzer *usecase.SecurityAnalyzer,
	proc *usecase.ResultProcessor,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.PortfolioAnalyzeUseCase {
	return usecase.NewPortfolioAnalyzeUseCase(analyzer, proc, m, cfg.Analysis.PortfolioWorkers)
}

// ProvideHistoryUseCase creates the archive query use case.
func ProvideHistoryUseCase(archive repository.ResultArchive) *usecase.HistoryUseCase {
	return usecase.NewHistoryUseCase(archive)
}

// ProvideKafkaSnapshotsHandler registers the handler for the snapshots topic.
func ProvideKafkaSnapshotsHandler(store repository.SnapshotStore, m repository.Metrics, cfg *config.Config) *usecase.KafkaSnapshotsHandler {
	return usecase.NewKafkaSnapshotsHandler(cfg.Kafka.SnapshotsTopic, store, m)
}

// ProvideQuoteCollector creates the quote collector with its pipeline.
func ProvideQuoteCollector(
	stream repository.QuoteStream,
	store repository.SnapshotStore,
	m repository.Metrics,
) *usecase.QuoteCollector {
	applier := usecase.NewQuoteApplier(store, m)
	// Pipeline between WebSocket and the snapshot store
	pipe := mid.NewQuotePipeline(applier, m,
		mid.WithMaxRPS(50),
		mid.WithBufferSize(2000),
	)
	return usecase.NewQuoteCollector(stream, applier, m, pipe)
}

// ProvideBytesCache creates the API response cache: Redis when enabled,
// in-process TTL cache otherwise.
func ProvideBytesCache(cfg *config.Config) icache.BytesCache {
	if cfg.Providers.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Providers.Redis.Addr,
			Password: cfg.Providers.Redis.Password,
			DB:       cfg.Providers.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideLockService creates the lock service guarding refresh runs: Redis
// when enabled so concurrent instances coordinate, in-memory otherwise.
func ProvideLockService(cfg *config.Config) (pkgcache.Service, error) {
	if !cfg.Providers.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}
	host, port := splitAddr(cfg.Providers.Redis.Addr)
	c, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Providers.Redis.Password),
		pkgcache.WithRedisDB(cfg.Providers.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis lock cache: %w", err)
	}
	return c, nil
}

// ProvideRefreshQueue creates the Redis-backed refresh queue with its job.
// Returns nil when Redis is disabled; the refresh endpoint then responds 503.
func ProvideRefreshQueue(
	cfg *config.Config,
	lgr *applogger.Logger,
	portfolio *usecase.PortfolioAnalyzeUseCase,
	locks pkgcache.Service,
) *queue.RedisQueue {
	rc, ok := locks.(*pkgcache.RedisCache)
	if !ok {
		return nil
	}
	q := queue.NewRedisQueue(lgr, &queue.QueueConfig{
		Workers:    1,
		RetryLimit: 2,
		RetryDelay: 30 * time.Second,
	}, rc.Client(), queue.ModeProducerConsumer)
	q.RegisterJob(usecase.NewRefreshJob(portfolio, locks, lgr, cfg.MarketFeed.Symbols, cfg.Analysis.RefreshLockTTL))
	return q
}

func splitAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 6379
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 6379
	}
	return host, port
}

// ProvideAnalysisHandler creates the API handler with cache wired in.
func ProvideAnalysisHandler(
	lgr *applogger.Logger,
	analyzer *usecase.SecurityAnalyzer,
	portfolio *usecase.PortfolioAnalyzeUseCase,
	history *usecase.HistoryUseCase,
	respCache icache.BytesCache,
	refreshQ *queue.RedisQueue,
	cfg *config.Config,
) *api.AnalysisHandler {
	h := api.NewAnalysisHandler(lgr, analyzer, portfolio, history)
	h.SetCache(respCache)
	h.SetCacheTTL(cfg.Providers.CacheTTL.Analysis)
	if refreshQ != nil {
		h.SetRefresher(refreshQ)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	lgr *applogger.Logger,
	collector *usecase.QuoteCollector,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaSnapshotsHandler,
	chClient *pkgch.Client,
	proc *usecase.ResultProcessor,
	handler *api.AnalysisHandler,
	refreshQ *queue.RedisQueue,
) *server.App {
	if consumer != nil {
		consumer.WithConsumerHook(pkgkafka.NoopHook{})
	}
	app := server.New(cfg, lgr, collector, consumer, kh, chClient)
	app.SetHTTPHandler(handler)
	app.ResultProc = proc
	app.RefreshQueue = refreshQ
	return app
}
