// Package testinfra provides throwaway stores for package tests.
package testinfra

import (
	"context"
	"testing"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
)

// NewStore opens an in-memory SQLite store with the full schema. It is
// closed when the test finishes.
func NewStore(t testing.TB) *database.Store {
	t.Helper()

	ctx := context.Background()
	store, err := database.Open(ctx, database.Options{
		Driver:      database.DriverSQLite,
		DSN:         ":memory:",
		WaitRetries: 1,
	})
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("Warning: failed to close test store: %v", err)
		}
	})

	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return store
}
