// Package repository implements record CRUD over the JSON collection documents
// held by a storage.Store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/storage"
)

// ErrNotFound is returned by Update when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// maxIDAttempts bounds ID regeneration when a generated ID is already taken.
const maxIDAttempts = 16

// Collection stores a slice of records as one JSON document under a fixed key.
// Every mutation loads the whole document, changes it, and writes it back with a
// single Set. Mutations run through a per-collection queue in submission order.
type Collection[T models.Record[T]] struct {
	store   storage.Store
	key     string
	prepend bool
	newID   func() string
	queue   *writeQueue
}

// Option configures a Collection.
type Option func(*options)

type options struct {
	prepend bool
	newID   func() string
}

// WithPrepend makes Insert put new records first instead of last.
func WithPrepend() Option {
	return func(o *options) { o.prepend = true }
}

// WithIDGenerator replaces the UUID generator used by Insert.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// NewCollection creates a collection bound to key. Call Close when done.
func NewCollection[T models.Record[T]](store storage.Store, key string, opts ...Option) *Collection[T] {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		store:   store,
		key:     key,
		prepend: o.prepend,
		newID:   o.newID,
		queue:   newWriteQueue(),
	}
}

// Key returns the document key of the collection.
func (c *Collection[T]) Key() string { return c.key }

// Close stops the write queue.
func (c *Collection[T]) Close() { c.queue.close() }

// LoadAll returns every record. A document that was never written yields an empty slice.
// A payload that is not valid JSON yields a *storage.ReadError wrapping storage.ErrMalformed.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	payload, err := c.store.Get(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &storage.ReadError{Key: c.key, Err: err}
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, &storage.ReadError{Key: c.key, Err: fmt.Errorf("%w: %v", storage.ErrMalformed, err)}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// FindByID returns the first record with the given ID.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	records, err := c.LoadAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, record := range records {
		if record.GetID() == id {
			return record, true, nil
		}
	}
	return zero, false, nil
}

// SaveAll overwrites the document with records.
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) error {
	return c.queue.do(ctx, func(ctx context.Context) error {
		return c.save(ctx, records)
	})
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, payload); err != nil {
		return &storage.WriteError{Key: c.key, Err: err}
	}
	return nil
}

// MutateFunc receives the current records and returns the records to store.
// Returning changed == false skips the write.
type MutateFunc[T any] func(records []T) (updated []T, changed bool, err error)

// Mutate runs a load-modify-save cycle on the write queue.
// If fn returns an error nothing is written and the error is returned.
func (c *Collection[T]) Mutate(ctx context.Context, fn MutateFunc[T]) error {
	return c.queue.do(ctx, func(ctx context.Context) error {
		records, err := c.LoadAll(ctx)
		if err != nil {
			return err
		}
		updated, changed, err := fn(records)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return c.save(ctx, updated)
	})
}

// UpsertByID replaces the first record whose ID equals record's ID.
// When no record matches nothing is written and false is returned.
func (c *Collection[T]) UpsertByID(ctx context.Context, record T) (bool, error) {
	found := false
	err := c.Mutate(ctx, func(records []T) ([]T, bool, error) {
		for i := range records {
			if records[i].GetID() == record.GetID() {
				records[i] = record
				found = true
				return records, true, nil
			}
		}
		return records, false, nil
	})
	return found, err
}

// Update applies fn to the record with the given ID and stores the result.
// It returns ErrNotFound when the record does not exist. If fn fails nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(record *T) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, func(records []T) ([]T, bool, error) {
		for i := range records {
			if records[i].GetID() != id {
				continue
			}
			if err := fn(&records[i]); err != nil {
				return nil, false, err
			}
			updated = records[i]
			return records, true, nil
		}
		return nil, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	})
	return updated, err
}

// Insert stores record under a freshly generated ID that no existing record uses,
// and returns the stored record.
func (c *Collection[T]) Insert(ctx context.Context, record T) (T, error) {
	var inserted T
	err := c.Mutate(ctx, func(records []T) ([]T, bool, error) {
		id, err := c.uniqueID(records)
		if err != nil {
			return nil, false, err
		}
		inserted = record.WithID(id)
		if c.prepend {
			return append([]T{inserted}, records...), true, nil
		}
		return append(records, inserted), true, nil
	})
	return inserted, err
}

func (c *Collection[T]) uniqueID(records []T) (string, error) {
	taken := make(map[string]struct{}, len(records))
	for _, record := range records {
		taken[record.GetID()] = struct{}{}
	}
	for i := 0; i < maxIDAttempts; i++ {
		id := c.newID()
		if _, dup := taken[id]; id != "" && !dup {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique id for %s", c.key)
}

// DeleteByID removes the first record with the given ID.
// It reports whether a record was removed; a missing ID writes nothing.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	removed := false
	err := c.Mutate(ctx, func(records []T) ([]T, bool, error) {
		for i := range records {
			if records[i].GetID() == id {
				removed = true
				kept := make([]T, 0, len(records)-1)
				kept = append(kept, records[:i]...)
				return append(kept, records[i+1:]...), true, nil
			}
		}
		return records, false, nil
	})
	return removed, err
}
