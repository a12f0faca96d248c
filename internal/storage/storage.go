// ABOUTME: Blob store contract for the persisted state document
// ABOUTME: One JSON string under one fixed versioned key, failures wrapped

package storage

import "fmt"

// SchemaKey is the storage key for the current document schema. Each schema
// version uses its own key; an older version's data is left untouched and a
// new version's first run reseeds from scratch.
const SchemaKey = "moireu:v3:state"

// Blob is the persistence adapter: a synchronous key-value store holding the
// serialized state document under a fixed key. Load reports absence via ok;
// both methods wrap failures in *StorageError and never panic.
type Blob interface {
	Load() (raw string, ok bool, err error)
	Save(raw string) error
	Delete() error
	Close() error
}

// StorageError wraps a failure of the underlying store. Save failures are
// non-fatal to the session: the in-memory document stays authoritative.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
