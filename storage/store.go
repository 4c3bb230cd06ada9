// Package storage is the persistence gateway: a file-backed JSON
// key-value store mirroring the browser local-storage layout of the
// original site. One JSON document per key, kept in memory and written
// through on every mutation.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Keys of the persisted state, exactly as the original site laid them
// out in local storage.
const (
	KeyProducts    = "products"
	KeyBlogPosts   = "blogPosts"
	KeyUsers       = "users"
	KeyReviews     = "reviews"
	KeyWishlist    = "wishlist"
	KeyCurrentUser = "currentUser"
	KeyCart        = "artisanalCraftsCart"
)

// knownKeys maps each key to its default document. currentUser has no
// default: absent means logged out.
var knownKeys = map[string]string{
	KeyProducts:    "[]",
	KeyBlogPosts:   "[]",
	KeyUsers:       "[]",
	KeyReviews:     "[]",
	KeyWishlist:    "[]",
	KeyCurrentUser: "",
	KeyCart:        "[]",
}

// ErrAbsent is returned by Get when a key holds no value. List readers
// treat it as an empty collection, single-record readers as "not set".
var ErrAbsent = errors.New("storage: key absent")

// CorruptError reports a key whose persisted document is not valid
// JSON for the requested shape. Recover with Reset.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("storage: corrupt state under key %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

type Store struct {
	mu   sync.RWMutex
	dir  string
	data map[string]json.RawMessage
}

// Open loads every known key from dir. Files that do not exist leave
// the key absent; files holding invalid JSON are kept as-is and
// reported on first Get, so the caller decides when to reset them.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dir:  dir,
		data: make(map[string]json.RawMessage),
	}

	for key := range knownKeys {
		raw, err := os.ReadFile(s.path(key))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !json.Valid(raw) {
			log.Printf("⚠️ storage: key %q holds invalid JSON, reads will report corrupt state", key)
		}
		s.data[key] = raw
	}

	return s, nil
}

// Get unmarshals the document under key into dst. A missing key yields
// ErrAbsent; a document that does not decode yields *CorruptError.
func (s *Store) Get(key string, dst any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || len(raw) == 0 {
		return ErrAbsent
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &CorruptError{Key: key, Err: err}
	}
	return nil
}

// Set serializes v and writes it through to disk. From the caller's
// point of view the whole collection is replaced atomically: the file
// is written to a temp name and renamed into place.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw
	return s.writeFile(key, raw)
}

// Delete removes the key entirely, e.g. clearing the current-user
// snapshot on logout.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Reset restores a key to its default document. It is the recovery
// path for corrupt state and always logs the occurrence.
func (s *Store) Reset(key string) error {
	def, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("storage: unknown key %q", key)
	}

	log.Printf("⚠️ storage: resetting key %q to its default", key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if def == "" {
		delete(s.data, key)
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
		return nil
	}

	raw := json.RawMessage(def)
	s.data[key] = raw
	return s.writeFile(key, raw)
}

// Has reports whether a key currently holds a value.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	return ok && len(raw) > 0
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) writeFile(key string, raw []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}
