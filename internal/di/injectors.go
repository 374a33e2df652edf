//go:build wireinject
// +build wireinject

package di

import (
	"drinkdays/internal"
	"drinkdays/internal/controllers"
	"drinkdays/internal/providers"
	"drinkdays/internal/services"
	"drinkdays/internal/storage"
	"drinkdays/internal/structures"
	wire "github.com/google/wire"
)

var journalSet = wire.NewSet(
	providers.NewConfigProvider,
	provideLogger,
	providers.NewHolidayProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,

	storage.NewFileStore,
	storage.NewRecordStore,
	storage.NewSettingsStore,
	wire.Bind(new(providers.JournalState), new(*storage.RecordStore)),

	services.NewJournalService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		journalSet,
		storage.NewZstdCompressor,
		wire.Bind(new(services.JournalServiceInterface), new(*services.JournalService)),

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}

func InitJournal(cfg *structures.CliFlags) (*services.JournalService, func(), error) {

	wire.Build(
		journalSet,
		provideCompressor,
	)

	return nil, nil, nil
}
