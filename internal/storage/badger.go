// ABOUTME: Badger-backed implementation of the blob store
// ABOUTME: Opens a local key-value database under the data directory

package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerBlob stores the document in a local Badger database under SchemaKey.
type BadgerBlob struct {
	db  *badger.DB
	key []byte
}

// OpenBadger opens (or creates) the Badger database at dir.
func OpenBadger(dir string) (*BadgerBlob, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	return &BadgerBlob{db: db, key: []byte(SchemaKey)}, nil
}

// Load reads the document string, reporting absence without error.
func (b *BadgerBlob) Load() (string, bool, error) {
	var raw []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "load", Err: err}
	}
	return string(raw), true, nil
}

// Save writes the document string under the fixed key.
func (b *BadgerBlob) Save(raw string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key, []byte(raw))
	})
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Delete removes this schema version's key. Other versions' keys are not
// touched.
func (b *BadgerBlob) Delete() error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(b.key)
	})
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (b *BadgerBlob) Close() error {
	if err := b.db.Close(); err != nil {
		return &StorageError{Op: "close", Err: err}
	}
	return nil
}
