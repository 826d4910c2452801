// Package redis provides a Redis-backed implementation of the storage.Store interface.
// Each document is one string value under "<prefix><key>".
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/recipelist/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using Redis strings.
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to the Redis server at addr and verifies the connection.
func New(ctx context.Context, addr, prefix string) (*Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewFromClient(rdb, prefix), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(rdb *goredis.Client, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Get returns the payload stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return payload, nil
}

// Set replaces the payload stored under key.
func (s *Store) Set(ctx context.Context, key string, payload []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set document: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
