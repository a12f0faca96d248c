// ABOUTME: The state store: owns the document, persistence, and randomness
// ABOUTME: Serializes domain operations and saves once per user action

package state

import (
	"sync"

	"moireu/internal/identity"
	"moireu/internal/rng"
	"moireu/internal/storage"
)

// Reply-count ranges for the decorative post counter.
const (
	replyCountMin = 5
	replyCountMax = 250

	characterReplyCountMin = 0
	characterReplyCountMax = 50
)

// Store owns the single state document for the session. Every domain
// operation takes the lock, mutates, and persists before returning, so each
// operation fully completes before the next one reads.
type Store struct {
	mu           sync.Mutex
	doc          *Document
	blob         storage.Blob
	rng          rng.Source
	fallbackUser string
}

// New wraps an existing document. The fallback identity ($MOIREU_USER or the
// fixed placeholder) is resolved once at construction. Used by tests; normal
// startup goes through LoadOrInit.
func New(doc *Document, blob storage.Blob, src rng.Source) *Store {
	return &Store{doc: doc, blob: blob, rng: src, fallbackUser: identity.Fallback("")}
}

// LoadOrInit loads the stored document, falling back to a freshly seeded one
// when the blob is absent or does not parse. The seed is persisted
// immediately. The returned store is always usable; a non-nil error is the
// save failure, reported but non-fatal.
func LoadOrInit(blob storage.Blob, src rng.Source) (*Store, error) {
	raw, ok, err := blob.Load()
	if err == nil && ok {
		if doc, perr := ParseDocument(raw); perr == nil {
			return New(doc, blob, src), nil
		}
	}
	// Absent, unreadable, or unparseable: reseed.
	store := New(Seed(src), blob, src)
	return store, store.persist()
}

// Reset deletes this schema version's stored document. The next LoadOrInit
// reseeds.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blob.Delete()
}

// persist serializes and saves the document. A save failure leaves the
// in-memory document authoritative for the rest of the session.
func (s *Store) persist() error {
	raw, err := s.doc.Marshal()
	if err != nil {
		return &storage.StorageError{Op: "marshal", Err: err}
	}
	return s.blob.Save(raw)
}

// SetUniverseText replaces the freeform universe blob and persists it.
func (s *Store) SetUniverseText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.UniverseText = text
	return s.persist()
}

// localUsernameLocked resolves the local user's username, falling back to the
// store's fallback identity when no local profile is set. Callers hold the
// lock.
func (s *Store) localUsernameLocked() string {
	if p := s.profileByIDLocked(s.doc.MyProfileID); p != nil {
		return p.Username
	}
	return s.fallbackUser
}
