// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/Veraticus/freemium-tools/internal/storage"
)

// SetupTestStore creates a migrated in-memory store that is closed when
// the test ends.
func SetupTestStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return store
}

// SetupTestStoreWith seeds the store with prefs.
func SetupTestStoreWith(t *testing.T, prefs model.Preferences) *storage.SQLiteStorage {
	t.Helper()

	store := SetupTestStore(t)
	if err := store.SavePreferences(context.Background(), prefs); err != nil {
		t.Fatalf("failed to seed preferences: %v", err)
	}
	return store
}
