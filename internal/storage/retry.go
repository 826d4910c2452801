package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryConfig controls how RetryingStore retries failed operations.
type RetryConfig struct {
	// MaxTries is the total number of attempts, including the first one.
	MaxTries uint

	// InitialInterval is the wait before the first retry. It doubles on every attempt.
	InitialInterval time.Duration

	// MaxElapsedTime bounds the total time spent retrying one operation.
	MaxElapsedTime time.Duration
}

// DefaultRetryConfig is used by the server when no overrides are configured.
var DefaultRetryConfig = RetryConfig{
	MaxTries:        3,
	InitialInterval: 50 * time.Millisecond,
	MaxElapsedTime:  2 * time.Second,
}

// RetryingStore wraps a Store and retries transient Get and Set failures
// with exponential backoff. ErrNotFound and context errors are never retried.
type RetryingStore struct {
	Store
	cfg RetryConfig
}

var _ Store = (*RetryingStore)(nil)

// Retrying wraps store with the given retry policy.
func Retrying(store Store, cfg RetryConfig) *RetryingStore {
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 1
	}
	return &RetryingStore{Store: store, cfg: cfg}
}

func (s *RetryingStore) options() []backoff.RetryOption {
	b := backoff.NewExponentialBackOff()
	if s.cfg.InitialInterval > 0 {
		b.InitialInterval = s.cfg.InitialInterval
	}
	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.cfg.MaxTries),
	}
	if s.cfg.MaxElapsedTime > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(s.cfg.MaxElapsedTime))
	}
	return opts
}

// Get reads key, retrying transient failures.
func (s *RetryingStore) Get(ctx context.Context, key string) ([]byte, error) {
	attempt := 0
	return backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		payload, err := s.Store.Get(ctx, key)
		if err != nil {
			if permanent(err) {
				return nil, backoff.Permanent(err)
			}
			slog.Warn("Document read failed, retrying", "key", key, "attempt", attempt, "error", err)
		}
		return payload, err
	}, s.options()...)
}

// Set writes key, retrying transient failures.
func (s *RetryingStore) Set(ctx context.Context, key string, payload []byte) error {
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := s.Store.Set(ctx, key, payload)
		if err != nil {
			if permanent(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			slog.Warn("Document write failed, retrying", "key", key, "attempt", attempt, "error", err)
		}
		return struct{}{}, err
	}, s.options()...)
	return err
}

func permanent(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
