package services

import (
	"github.com/shopspring/decimal"

	"github.com/taniteam/catatan/internal/ledger"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/view"
)

// DeleteIntent describes a pending destructive action. It is returned by
// the request step of the two-step delete protocol and causes no state
// change; the caller decides whether to send the confirming call.
type DeleteIntent struct {
	EntityType string `json:"entityType"`
	TargetID   string `json:"targetId"`
	Prompt     string `json:"prompt"`
}

// TransactionCreateFields holds the caller-supplied fields of a new
// transaction. The id, staff snapshot and final balance are assigned by
// the service.
type TransactionCreateFields struct {
	Code         string
	Date         models.DateTime
	CustomerName string
	CustomerUser string
	Amount       decimal.Decimal
	Description  string
	AccountID    string
}

// TransactionUpdateFields holds the optional fields of a transaction
// update; nil fields are left unchanged. The final balance snapshot is
// never part of an update.
type TransactionUpdateFields struct {
	Code         *string
	Date         *models.DateTime
	CustomerName *string
	CustomerUser *string
	Amount       *decimal.Decimal
	Description  *string
	AccountID    *string
}

// AccountUpdateFields holds the optional fields of an account update.
type AccountUpdateFields struct {
	Name *string
	Type *models.AccountType
}

// TransactionServicer defines the contract for transaction bookkeeping.
type TransactionServicer interface {
	List(filter view.Filter) []models.Transaction
	Summary() ledger.Summary
	GetByID(id string) (*models.Transaction, error)
	Create(actor models.Staff, fields TransactionCreateFields) (*models.Transaction, error)
	Update(actor models.Staff, id string, fields TransactionUpdateFields) (*models.Transaction, error)
	RequestDelete(actor models.Staff, id string) (*DeleteIntent, error)
	Delete(actor models.Staff, id string) (*models.Transaction, error)
}

// StaffServicer defines the contract for staff administration and login.
type StaffServicer interface {
	List() []models.Staff
	GetByID(id string) (*models.Staff, error)
	// Login resolves a username case-insensitively. The password is
	// deliberately not part of the contract: it is accepted by the login
	// surface and never checked.
	Login(username string) (*models.Staff, error)
	Create(actor models.Staff, name, username string, role models.Role) (*models.Staff, error)
	UpdateRole(actor models.Staff, id string, role models.Role) (*models.Staff, error)
	RequestDelete(actor models.Staff, id string) (*DeleteIntent, error)
	Delete(actor models.Staff, id string) (*models.Staff, error)
}

// AccountServicer defines the contract for chart-of-accounts management.
type AccountServicer interface {
	// List returns the accounts with derived balances filled in.
	List() []models.Account
	Create(actor models.Staff, id, name string, accountType models.AccountType) (*models.Account, error)
	Update(actor models.Staff, id string, fields AccountUpdateFields) (*models.Account, error)
	Delete(actor models.Staff, id string) (*models.Account, error)
}

// AuditServicer defines the contract for the audit recorder. Record is
// invoked exactly once per logical mutation.
type AuditServicer interface {
	Record(actor *models.Staff, action models.AuditAction, details, targetID string)
	List() []models.AuditEntry
}
