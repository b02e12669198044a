// Package testutil provides shared helpers for tests that need a real
// database or seeded domain data.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/storage"
)

// SetupTestDB creates a migrated SQLite database in a per-test temp
// directory and closes it when the test finishes.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "dompet.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedCategories persists the given categories, failing the test on error.
func SeedCategories(t *testing.T, store *storage.SQLiteStorage, categories ...model.Category) {
	t.Helper()

	ctx := context.Background()
	for i := range categories {
		if _, err := store.CreateCategory(ctx, &categories[i]); err != nil {
			t.Fatalf("failed to seed category %q: %v", categories[i].Name, err)
		}
	}
}

// SeedTransactions persists the given transactions, failing the test on
// error.
func SeedTransactions(t *testing.T, store *storage.SQLiteStorage, txns ...model.Transaction) {
	t.Helper()

	if err := store.SaveTransactions(context.Background(), txns); err != nil {
		t.Fatalf("failed to seed transactions: %v", err)
	}
}

// Date builds a UTC day-granularity date, the shape every transaction
// date in these tests takes.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
