// Package memory provides an in-memory implementation of the storage.Store
// interface used for tests and ephemeral environments.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/recipelist/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps documents in a map. Payloads are copied on the way in and out.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Get returns a copy of the payload stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.docs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Set stores a copy of payload under key.
func (s *Store) Set(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = append([]byte(nil), payload...)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
