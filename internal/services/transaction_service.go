package services

import (
	"fmt"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/ledger"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/store"
	"github.com/taniteam/catatan/internal/uuid"
	"github.com/taniteam/catatan/internal/view"
)

// transactionService handles transaction bookkeeping.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(st *store.Store) TransactionServicer {
	return &transactionService{store: st}
}

// List returns the displayed transaction sequence for the given filter.
func (s *transactionService) List(filter view.Filter) []models.Transaction {
	return view.Apply(s.store.Transactions(), filter)
}

// Summary computes the aggregate figures over the whole collection,
// regardless of any active filter.
func (s *transactionService) Summary() ledger.Summary {
	return ledger.Summarize(s.store.Transactions())
}

// GetByID returns one transaction by id.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	for _, t := range s.store.Transactions() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

// Create records a new transaction. The final balance snapshot is captured
// here, once: the pre-insertion total over the whole collection plus the
// new signed amount.
func (s *transactionService) Create(actor models.Staff, fields TransactionCreateFields) (*models.Transaction, error) {
	if fields.Code == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction code is required")
	}
	if fields.CustomerName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "customer name is required")
	}
	if fields.CustomerUser == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "customer handle is required")
	}
	if fields.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account id is required")
	}
	if fields.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if fields.Amount.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}

	transactions := s.store.Transactions()
	preTotal := ledger.Summarize(transactions).TotalBalance

	transaction := models.Transaction{
		ID:           uuid.New(),
		Code:         fields.Code,
		Date:         fields.Date,
		StaffID:      actor.ID,
		StaffName:    actor.Name,
		CustomerName: fields.CustomerName,
		CustomerUser: fields.CustomerUser,
		Amount:       fields.Amount,
		FinalBalance: preTotal.Add(fields.Amount),
		Description:  fields.Description,
		AccountID:    fields.AccountID,
	}

	transactions = append([]models.Transaction{transaction}, transactions...)
	if err := s.store.ReplaceTransactions(transactions); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Update merges the provided fields into an existing transaction. The
// final balance snapshot is deliberately left untouched.
func (s *transactionService) Update(actor models.Staff, id string, fields TransactionUpdateFields) (*models.Transaction, error) {
	transactions := s.store.Transactions()

	idx := -1
	for i, t := range transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	t := transactions[idx]
	if fields.Code != nil {
		t.Code = *fields.Code
	}
	if fields.Date != nil {
		t.Date = *fields.Date
	}
	if fields.CustomerName != nil {
		t.CustomerName = *fields.CustomerName
	}
	if fields.CustomerUser != nil {
		t.CustomerUser = *fields.CustomerUser
	}
	if fields.Amount != nil {
		t.Amount = *fields.Amount
	}
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	if fields.AccountID != nil {
		t.AccountID = *fields.AccountID
	}
	transactions[idx] = t

	if err := s.store.ReplaceTransactions(transactions); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &t, nil
}

// RequestDelete validates that the actor may delete the transaction and
// returns the confirmation intent without changing any state.
func (s *transactionService) RequestDelete(actor models.Staff, id string) (*DeleteIntent, error) {
	transaction, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeDelete(actor, transaction); err != nil {
		return nil, err
	}

	return &DeleteIntent{
		EntityType: "transaction",
		TargetID:   transaction.ID,
		Prompt:     fmt.Sprintf("Apakah Anda yakin ingin menghapus transaksi %s?", transaction.Code),
	}, nil
}

// Delete removes a transaction by id. Only an administrator or the staff
// member who recorded it may delete it.
func (s *transactionService) Delete(actor models.Staff, id string) (*models.Transaction, error) {
	transactions := s.store.Transactions()

	idx := -1
	for i, t := range transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	deleted := transactions[idx]
	if err := s.authorizeDelete(actor, &deleted); err != nil {
		return nil, err
	}

	transactions = append(transactions[:idx], transactions[idx+1:]...)
	if err := s.store.ReplaceTransactions(transactions); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deleted, nil
}

func (s *transactionService) authorizeDelete(actor models.Staff, t *models.Transaction) error {
	if actor.IsAdmin() || t.StaffID == actor.ID {
		return nil
	}
	return apperrors.WithMessage(apperrors.ErrForbidden, "only an administrator or the recording staff member may delete this transaction")
}
