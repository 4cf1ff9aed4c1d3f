// Package store persists the four application collections as independently
// keyed JSON documents in a local SQLite file. Collections are loaded once
// at startup and the touched document is rewritten after every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taniteam/catatan/internal/logger"
	"github.com/taniteam/catatan/internal/models"
)

// Document keys. The names are carried over from the persisted documents
// of the original deployment so existing data keeps loading.
const (
	KeyStaff        = "company_staff"
	KeyTransactions = "company_trxs"
	KeyAccounts     = "company_accounts"
	KeyAuditLog     = "company_audit_logs"
)

// Document is one keyed JSON payload in the documents table.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// Store owns the in-memory collections and their durable documents.
// The persisted file belongs to a single profile: there is no conflict
// detection between concurrent writers, last write wins.
type Store struct {
	mu sync.RWMutex
	db *gorm.DB

	staff        []models.Staff
	transactions []models.Transaction
	accounts     []models.Account
	auditLog     []models.AuditEntry
}

// Open opens (creating if needed) the SQLite file at path, ensures the
// documents table exists, and loads all four collections.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	return New(db)
}

// New builds a Store on an already opened database and loads all four
// collections, falling back to the seed dataset per collection when a
// document is absent or its payload does not deserialize.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	s := &Store{db: db}
	s.staff = loadCollection(db, KeyStaff, models.SeedStaff)
	s.transactions = loadCollection(db, KeyTransactions, models.SeedTransactions)
	s.accounts = loadCollection(db, KeyAccounts, models.SeedAccounts)
	s.auditLog = loadCollection(db, KeyAuditLog, models.SeedAuditLog)
	return s, nil
}

// loadCollection reads one keyed document and deserializes it into a typed
// slice. A missing document or a malformed payload fails closed: the seed
// dataset is used and the stored payload is left untouched until the next
// mutation rewrites it.
func loadCollection[T any](db *gorm.DB, key string, seed func() []T) []T {
	var doc Document
	if err := db.First(&doc, "key = ?", key).Error; err != nil {
		return seed()
	}

	var items []T
	if err := json.Unmarshal(doc.Payload, &items); err != nil {
		logger.Get().Warnw("stored document is malformed, using seed data",
			"key", key,
			"error", err,
		)
		return seed()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persist rewrites one keyed document with the JSON encoding of items.
func (s *Store) persist(key string, items any) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}

	doc := Document{Key: key, Payload: payload, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}

// Staff returns a copy of the staff collection.
func (s *Store) Staff() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Staff(nil), s.staff...)
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Accounts returns a copy of the account collection.
func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Account(nil), s.accounts...)
}

// AuditLog returns a copy of the audit collection in storage order
// (newest first).
func (s *Store) AuditLog() []models.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditEntry(nil), s.auditLog...)
}

// ReplaceStaff swaps the staff collection and rewrites its document.
func (s *Store) ReplaceStaff(staff []models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = staff
	return s.persist(KeyStaff, staff)
}

// ReplaceTransactions swaps the transaction collection and rewrites its document.
func (s *Store) ReplaceTransactions(transactions []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = transactions
	return s.persist(KeyTransactions, transactions)
}

// ReplaceAccounts swaps the account collection and rewrites its document.
func (s *Store) ReplaceAccounts(accounts []models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
	return s.persist(KeyAccounts, accounts)
}

// ReplaceAuditLog swaps the audit collection and rewrites its document.
func (s *Store) ReplaceAuditLog(entries []models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLog = entries
	return s.persist(KeyAuditLog, entries)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
