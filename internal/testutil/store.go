package testutil

import (
	"context"
	"testing"

	"pocketledger/internal/storage/memory"
	"pocketledger/internal/store"
)

// SetupTestStore returns a state store backed by an in-memory document store.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(context.Background(), memory.New(), TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	return s
}
