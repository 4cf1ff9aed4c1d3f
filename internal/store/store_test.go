package store

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taniteam/catatan/internal/models"
)

var dbCounter atomic.Int64

// newTestDB opens a uniquely named in-memory database so tests cannot see
// each other's documents. testutil is not used here because it depends on
// this package.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func newTestStore(t *testing.T, db *gorm.DB) *Store {
	t.Helper()

	st, err := New(db)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return st
}

func TestNew(t *testing.T) {
	t.Run("falls back to seeds when no documents exist", func(t *testing.T) {
		st := newTestStore(t, newTestDB(t))
		defer st.Close()

		if got := len(st.Staff()); got != 5 {
			t.Errorf("expected 5 seed staff members, got %d", got)
		}
		if got := len(st.Accounts()); got != 15 {
			t.Errorf("expected 15 seed accounts, got %d", got)
		}
		if got := len(st.Transactions()); got != 3 {
			t.Errorf("expected 3 seed transactions, got %d", got)
		}
		if got := len(st.AuditLog()); got != 0 {
			t.Errorf("expected empty audit log, got %d entries", got)
		}
	})

	t.Run("falls back to seeds for a malformed document only", func(t *testing.T) {
		db := newTestDB(t)
		first := newTestStore(t, db)
		if err := first.ReplaceAccounts([]models.Account{{ID: "KEEP-1", Name: "Kept"}}); err != nil {
			t.Fatalf("failed to persist accounts: %v", err)
		}

		broken := Document{Key: KeyStaff, Payload: []byte("{not json"), UpdatedAt: time.Now()}
		if err := db.Create(&broken).Error; err != nil {
			t.Fatalf("failed to corrupt staff document: %v", err)
		}

		st := newTestStore(t, db)
		defer st.Close()

		if got := len(st.Staff()); got != 5 {
			t.Errorf("expected seed staff after corruption, got %d", got)
		}
		accounts := st.Accounts()
		if len(accounts) != 1 || accounts[0].ID != "KEEP-1" {
			t.Errorf("expected the persisted account collection to survive, got %v", accounts)
		}
	})
}

func TestReplaceAndReload(t *testing.T) {
	t.Run("mutations survive a reload", func(t *testing.T) {
		db := newTestDB(t)
		first := newTestStore(t, db)

		transactions := []models.Transaction{{
			ID:           "trx-p1",
			Code:         "TRX-PERSIST",
			Date:         models.MustParseDateTime("2026-03-01T10:00:00"),
			StaffID:      "1",
			StaffName:    "Siti Nurhaliza",
			CustomerName: "CV Persist",
			CustomerUser: "persist_admin",
			Amount:       decimal.NewFromInt(5000),
			FinalBalance: decimal.NewFromInt(5000),
			AccountID:    "ACC-1",
		}}
		if err := first.ReplaceTransactions(transactions); err != nil {
			t.Fatalf("failed to replace transactions: %v", err)
		}

		second := newTestStore(t, db)
		defer second.Close()

		reloaded := second.Transactions()
		if len(reloaded) != 1 {
			t.Fatalf("expected 1 transaction after reload, got %d", len(reloaded))
		}
		if reloaded[0].Code != "TRX-PERSIST" {
			t.Errorf("expected TRX-PERSIST, got %s", reloaded[0].Code)
		}
		if !reloaded[0].Amount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected amount 5000, got %s", reloaded[0].Amount)
		}
	})

	t.Run("an emptied collection stays empty after reload", func(t *testing.T) {
		db := newTestDB(t)
		first := newTestStore(t, db)
		if err := first.ReplaceTransactions([]models.Transaction{}); err != nil {
			t.Fatalf("failed to clear transactions: %v", err)
		}

		second := newTestStore(t, db)
		defer second.Close()

		if got := len(second.Transactions()); got != 0 {
			t.Errorf("expected empty collection, got %d (seed fallback must not fire)", got)
		}
	})

	t.Run("each collection is persisted under its own key", func(t *testing.T) {
		db := newTestDB(t)
		st := newTestStore(t, db)
		defer st.Close()

		if err := st.ReplaceStaff([]models.Staff{{ID: "s1", Username: "solo"}}); err != nil {
			t.Fatalf("failed to replace staff: %v", err)
		}

		var docs []Document
		if err := db.Find(&docs).Error; err != nil {
			t.Fatalf("failed to list documents: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected 1 document, got %d", len(docs))
		}
		if docs[0].Key != KeyStaff {
			t.Errorf("expected key %s, got %s", KeyStaff, docs[0].Key)
		}
	})
}

func TestAccessorsReturnCopies(t *testing.T) {
	st := newTestStore(t, newTestDB(t))
	defer st.Close()

	staff := st.Staff()
	staff[0].Name = "Mutated"

	if st.Staff()[0].Name == "Mutated" {
		t.Error("mutating the returned slice must not affect the store")
	}
}
