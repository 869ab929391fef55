//go:build wireinject
// +build wireinject

package di

import (
	"StockPulse/pkg/config"
	"StockPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideSnapshotStore,
		ProvideResultArchive,
		ProvideResultPublisher,
		ProvideQuoteStream,

		// Collaborator clients
		ProvideMarketDataProvider,
		ProvideNewsProvider,
		ProvideSentimentScorer,
		ProvideAnalystProvider,

		// Use cases
		ProvideSecurityAnalyzer,
		ProvideResultProcessor,
		ProvidePortfolioAnalyzer,
		ProvideHistoryUseCase,
		ProvideKafkaSnapshotsHandler,
		ProvideQuoteCollector,

		// Caching, locks, refresh queue
		ProvideBytesCache,
		ProvideLockService,
		ProvideRefreshQueue,

		// HTTP
		ProvideAnalysisHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
