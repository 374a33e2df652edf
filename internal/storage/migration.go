package storage

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"drinkdays/internal/models"
)

var (
	ErrCorruptPayload     = errors.New("corrupt records payload")
	ErrUnsupportedVersion = errors.New("unsupported records schema version")
)

// migrationStep upgrades a schema from version N to N+1 in place.
type migrationStep func(schema *models.StorageSchema, now time.Time, newID func() string)

// migrations is keyed by the version a step upgrades from. Adding a schema
// version means adding a step here and bumping models.CurrentSchemaVersion.
var migrations = map[int]migrationStep{
	0: backfillIdentity,
}

// Migrate decodes a records payload and brings it to the current schema
// version. migrated is true when the result differs from what was stored
// and should be written back. Running it on its own output is a no-op.
func Migrate(raw []byte, now time.Time, newID func() string) (*models.StorageSchema, bool, error) {
	schema, err := decodeSchema(raw)
	if err != nil {
		return nil, false, err
	}
	if schema.Version > models.CurrentSchemaVersion {
		return nil, false, fmt.Errorf("%w: %d", ErrUnsupportedVersion, schema.Version)
	}

	from := schema.Version
	for schema.Version < models.CurrentSchemaVersion {
		step, ok := migrations[schema.Version]
		if !ok {
			return nil, false, fmt.Errorf("%w: no migration from version %d", ErrUnsupportedVersion, schema.Version)
		}
		step(schema, now, newID)
		schema.Version++
	}
	return schema, schema.Version != from, nil
}

// decodeSchema accepts the versioned envelope or the legacy bare array,
// which is reported as version 0.
func decodeSchema(raw []byte) (*models.StorageSchema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptPayload)
	}

	switch trimmed[0] {
	case '[':
		var records []models.DrinkRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCorruptPayload, err)
		}
		return &models.StorageSchema{Version: 0, Records: records}, nil
	case '{':
		var schema models.StorageSchema
		if err := json.Unmarshal(trimmed, &schema); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCorruptPayload, err)
		}
		if schema.Version < 1 {
			return nil, fmt.Errorf("%w: envelope with version %d", ErrCorruptPayload, schema.Version)
		}
		if schema.Records == nil {
			schema.Records = make([]models.DrinkRecord, 0)
		}
		return &schema, nil
	}
	return nil, fmt.Errorf("%w: unexpected leading byte %q", ErrCorruptPayload, trimmed[0])
}

// backfillIdentity gives legacy records the id and timestamps they lacked.
func backfillIdentity(schema *models.StorageSchema, now time.Time, newID func() string) {
	if schema.Records == nil {
		schema.Records = make([]models.DrinkRecord, 0)
	}
	for i := range schema.Records {
		r := &schema.Records[i]
		if r.ID == "" {
			r.ID = newID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = r.CreatedAt
		}
	}
}
