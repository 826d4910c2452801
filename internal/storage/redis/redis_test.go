package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/mmynk/recipelist/internal/storage"
)

// TestRedisStore runs against a live server; set REDIS_ADDR to enable it.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	store, err := New(ctx, addr, "recipelist-test-"+uuid.NewString()+":")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(ctx, storage.KeyRecipes); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, storage.KeyRecipes, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get(ctx, storage.KeyRecipes)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Payload mismatch: %s", got)
	}
}

func TestNewRequiresAddress(t *testing.T) {
	if _, err := New(context.Background(), "", "p:"); err == nil {
		t.Error("Expected error for empty address")
	}
}
