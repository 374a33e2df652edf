package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"drinkdays/internal/providers"
	"drinkdays/internal/storage/interfaces"
	"drinkdays/internal/structures"
)

// FileStore keeps one file per key. Writes go through a temp file that is
// synced and renamed over the target, so a blob is either old or new.
type FileStore struct {
	dir        string
	compress   bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.KeyValueStore, error) {
	if err := os.MkdirAll(conf.Storage.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{
		dir:        conf.Storage.Dir,
		compress:   conf.Storage.Compress,
		compressor: compressor,
		logger:     logger,
	}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

func (f *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	// Sniff instead of trusting the flag so toggling compression keeps old blobs readable.
	if isCompressed(data) {
		data, err = f.compressor.Decompress(data)
		if err != nil {
			return nil, false, fmt.Errorf("decompress %s: %w", key, err)
		}
	}
	return data, true, nil
}

func (f *FileStore) Set(key string, data []byte) error {
	if f.compress {
		compressed, err := f.compressor.Compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}

	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return err
	}
	f.logger.Debugf(providers.TypeApp, "Persisted %d bytes to %s", len(data), fileName)
	return nil
}
