package models

// CurrentSchemaVersion is the version every records write uses.
// Version 0 was a bare JSON array of records.
const CurrentSchemaVersion = 1

// StorageSchema is the versioned envelope persisted under the records key.
type StorageSchema struct {
	Version int           `json:"version"`
	Records []DrinkRecord `json:"records"`
}
