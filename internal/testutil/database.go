// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taniteam/catatan/internal/store"
)

// SetupTestDB opens a uniquely named in-memory SQLite database. Every test
// gets its own database so persisted documents cannot leak between tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// SetupTestStore builds a Store on a fresh in-memory database. No documents
// have been persisted yet, so every collection starts from the seed dataset.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.New(SetupTestDB(t))
	if err != nil {
		t.Fatalf("failed to build test store: %v", err)
	}
	return st
}

// TeardownTestStore closes the store's underlying database connection.
func TeardownTestStore(t *testing.T, st *store.Store) {
	t.Helper()

	if err := st.Close(); err != nil {
		t.Errorf("failed to close test store: %v", err)
	}
}
