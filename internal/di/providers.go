package di

import (
	"drinkdays/internal/providers"
	"drinkdays/internal/storage"
	"drinkdays/internal/storage/interfaces"
	"drinkdays/internal/structures"
)

func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

// The server closes its compressor on shutdown; one-shot commands release it here.
func provideCompressor() (interfaces.CompressorInterface, func(), error) {
	compressor, err := storage.NewZstdCompressor()
	if err != nil {
		return nil, nil, err
	}
	return compressor, compressor.Close, nil
}
