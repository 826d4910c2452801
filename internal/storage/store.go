// Package storage provides abstractions for persistent document storage.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Document keys. Each key holds one JSON array of records.
const (
	KeyRecipes       = "recipeData"
	KeyShoppingLists = "shoppingListData"
	KeyIngredients   = "ingredientData"
)

var (
	// ErrNotFound is returned by Store.Get when no document exists under the key.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed marks a stored payload that is not valid JSON for its collection.
	ErrMalformed = errors.New("malformed document")
)

// Store defines the interface for document storage operations.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the repository layer.
type Store interface {
	// Get returns the payload stored under key.
	// Returns ErrNotFound if nothing was ever written there.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the payload stored under key in a single write.
	// Either the new payload is stored or the previous one is kept.
	Set(ctx context.Context, key string, payload []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// ReadError reports a document that could not be read or parsed.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a document that could not be written.
// The previously stored payload is still in place.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
