//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"urlchecker/internal"
	"urlchecker/internal/controllers"
	"urlchecker/internal/events"
	"urlchecker/internal/persistence"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/scanner"
	"urlchecker/internal/services"
	"urlchecker/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewClipboardProvider,
		providers.NewClockProvider,

		scanner.NewClassifier,
		persistence.NewZstdCompressor,
		persistence.NewSnapshotStore,
		persistence.NewHistoryRepository,
		wire.Bind(new(interfaces.HistoryStoreInterface), new(*persistence.HistoryRepository)),
		persistence.NewHistoryWriter,
		wire.Bind(new(interfaces.HistoryWriterInterface), new(*persistence.HistoryWriter)),
		events.NewPublisher,
		services.NewScanOrchestrator,
		persistence.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
