package storage

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"drinkdays/internal/models"
	"drinkdays/internal/providers"
	"drinkdays/internal/storage/interfaces"
	"drinkdays/internal/structures"
)

// SettingsStore keeps the user settings as a flat object. There is no
// schema version: missing or invalid fields take their default on load.
type SettingsStore struct {
	mu       sync.RWMutex
	kv       interfaces.KeyValueStore
	key      string
	logger   providers.Logger
	defaults models.AppSettings
	current  models.AppSettings
	version  uint64
}

func NewSettingsStore(conf *structures.Config, kv interfaces.KeyValueStore, logger providers.Logger) *SettingsStore {
	defaults := models.DefaultSettings(resolveLocale(conf.Settings.Locale))
	return &SettingsStore{
		kv:       kv,
		key:      conf.Storage.SettingsKey,
		logger:   logger,
		defaults: defaults,
		current:  defaults,
	}
}

func resolveLocale(configured string) string {
	if configured != "" {
		return configured
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// Load merges the persisted object over the defaults. Unreadable settings
// are not fatal: the defaults are used and the error is returned for logging.
func (s *SettingsStore) Load() (models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.defaults
	s.version++

	raw, found, err := s.kv.Get(s.key)
	if err != nil {
		return s.current, err
	}
	if !found {
		return s.current, nil
	}

	merged := s.defaults
	if err := json.Unmarshal(raw, &merged); err != nil {
		s.logger.Warnf(providers.TypeApp, "Settings payload unreadable, using defaults: %s", err)
		return s.current, err
	}
	s.current = merged.Sanitize(s.defaults)
	return s.current, nil
}

// Update applies a partial change. Invalid results are rejected before
// anything is stored. Like records, memory is updated before persisting.
func (s *SettingsStore) Update(patch models.SettingsPatch) (models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Apply(patch)
	if err := next.Validate(); err != nil {
		return s.current, err
	}
	s.current = next
	s.version++

	data, err := json.Marshal(next)
	if err != nil {
		return next, err
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return next, fmt.Errorf("%w: settings: %w", ErrPersistFailed, err)
	}
	return next, nil
}

func (s *SettingsStore) Get() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Snapshot returns the settings with their version.
func (s *SettingsStore) Snapshot() (models.AppSettings, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

func (s *SettingsStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *SettingsStore) Defaults() models.AppSettings {
	return s.defaults
}
