package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"drinkdays/internal/models"
	"drinkdays/internal/providers"
	"drinkdays/internal/storage/interfaces"
	"drinkdays/internal/structures"
)

var (
	ErrReadOnly      = errors.New("record store is read-only")
	ErrPersistFailed = errors.New("persist failed")
)

// RecordStore owns the journal. The records slice is copy-on-write: a
// snapshot handed out by Snapshot is never modified afterwards. Writers are
// serialized so every upsert starts from the latest state.
type RecordStore struct {
	mu       sync.Mutex
	kv       interfaces.KeyValueStore
	key      string
	logger   providers.Logger
	records  []models.DrinkRecord
	version  uint64
	readOnly bool
	now      func() time.Time
	newID    func() string
}

func NewRecordStore(conf *structures.Config, kv interfaces.KeyValueStore, logger providers.Logger) *RecordStore {
	return &RecordStore{
		kv:      kv,
		key:     conf.Storage.RecordsKey,
		logger:  logger,
		records: make([]models.DrinkRecord, 0),
		now:     time.Now,
		newID:   newRecordID,
	}
}

// newRecordID returns a UUIDv7: a millisecond timestamp prefix followed by
// random bits.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load reads the persisted journal, migrating legacy payloads and writing
// the migrated form back. A payload that cannot be decoded leaves the store
// empty and read-only so the bad blob is not overwritten.
func (s *RecordStore) Load() ([]models.DrinkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.DrinkRecord, 0)
	s.version++

	raw, found, err := s.kv.Get(s.key)
	if err != nil {
		s.readOnly = true
		return s.records, fmt.Errorf("read records: %w", err)
	}
	if !found {
		s.readOnly = false
		return s.records, nil
	}

	schema, migrated, err := Migrate(raw, s.now(), s.newID)
	if err != nil {
		s.readOnly = true
		s.logger.Errorf(providers.TypeApp, "Records payload rejected, store is read-only: %s", err)
		return s.records, err
	}
	s.readOnly = false
	s.records = schema.Records

	if migrated {
		s.logger.Warnf(providers.TypeApp, "Inconsistent records payload found, migrated %d records to schema v%d", len(schema.Records), schema.Version)
		if err := s.persist(schema.Records); err != nil {
			// Migration is idempotent; it runs again on the next load.
			s.logger.Errorf(providers.TypeApp, "Persisting migrated records failed: %s", err)
		}
	}
	return s.records, nil
}

// Upsert stores the record for input.Date, replacing an existing record for
// that date in place and keeping its id and creation time. The in-memory
// journal is updated before persisting; a persistence error is returned
// with the record and memory stays ahead of disk until the next write.
func (s *RecordStore) Upsert(input models.RecordInput) (models.DrinkRecord, error) {
	rec, err := input.ToRecord()
	if err != nil {
		return models.DrinkRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return models.DrinkRecord{}, ErrReadOnly
	}

	now := s.now()
	rec.ID, rec.CreatedAt, rec.UpdatedAt = "", now, now
	for _, r := range s.records {
		if r.Date == rec.Date {
			rec.ID, rec.CreatedAt = r.ID, r.CreatedAt
			break
		}
	}

	next := make([]models.DrinkRecord, 0, len(s.records)+1)
	replaced := false
	for _, r := range s.records {
		if r.Date != rec.Date {
			next = append(next, r)
			continue
		}
		if !replaced {
			next = append(next, rec)
			replaced = true
		}
	}
	if !replaced {
		rec.ID = s.newID()
		next = append(next, rec)
	}

	s.records = next
	s.version++

	if err := s.persist(next); err != nil {
		return rec, fmt.Errorf("%w: records: %w", ErrPersistFailed, err)
	}
	return rec, nil
}

func (s *RecordStore) persist(records []models.DrinkRecord) error {
	data, err := json.Marshal(models.StorageSchema{Version: models.CurrentSchemaVersion, Records: records})
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

// Snapshot returns the current records and the version they belong to.
// The version changes whenever the records do.
func (s *RecordStore) Snapshot() ([]models.DrinkRecord, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, s.version
}

func (s *RecordStore) Get(date string) (models.DrinkRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Date == date {
			return r, true
		}
	}
	return models.DrinkRecord{}, false
}

func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *RecordStore) ReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOnly
}

func (s *RecordStore) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
