// Package repository owns the typed CRUD and query operations over the
// persisted entities, layered on the storage gateway.
package repository

import (
	"errors"
	"log"
	"reflect"
	"time"

	"crafts-server/models"
	"crafts-server/storage"
)

type Repository struct {
	store      *storage.Store
	fetchDelay time.Duration
}

// New wires a repository over an opened store. fetchDelay is the
// artificial latency applied by the Fetch* helpers; pass 0 to disable
// (tests do).
func New(store *storage.Store, fetchDelay time.Duration) *Repository {
	return &Repository{store: store, fetchDelay: fetchDelay}
}

// loadList reads a collection key. Absent means empty; corrupt state is
// logged, the key reset to its default and an empty collection
// returned, so a single bad document cannot wedge the whole UI.
// Records that parse but violate their declared shape are dropped the
// same way: tampered state must not flow into renders.
func loadList[T any](s *storage.Store, key string) ([]T, error) {
	var items []T
	err := s.Get(key, &items)
	if err == nil {
		return validRecords(key, items), nil
	}
	if errors.Is(err, storage.ErrAbsent) {
		return nil, nil
	}

	var corrupt *storage.CorruptError
	if errors.As(err, &corrupt) {
		log.Printf("⚠️ repository: %v", corrupt)
		if resetErr := s.Reset(key); resetErr != nil {
			return nil, resetErr
		}
		return nil, nil
	}
	return nil, err
}

// validRecords filters out shape-invalid records from a decoded
// collection. Plain-value collections (the wishlist's id strings) have
// no struct tags to check and pass through unchanged.
func validRecords[T any](key string, items []T) []T {
	var zero T
	if t := reflect.TypeOf(zero); t == nil || t.Kind() != reflect.Struct {
		return items
	}

	kept := items[:0]
	for _, item := range items {
		if err := models.Validate(item); err != nil {
			log.Printf("⚠️ repository: dropping shape-invalid record under key %q: %v", key, err)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
