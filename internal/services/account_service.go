package services

import (
	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/ledger"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/store"
)

// accountService manages the chart of accounts. Balances are never
// stored on an account: every read derives them from the transaction log.
type accountService struct {
	store *store.Store
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(st *store.Store) AccountServicer {
	return &accountService{store: st}
}

// List returns the accounts with derived balances filled in.
func (s *accountService) List() []models.Account {
	return ledger.AccountBalances(s.store.Accounts(), s.store.Transactions())
}

// Create adds an account with a caller-supplied id and name. Administrator
// only. Id and name collisions are accepted silently, as are duplicate
// display names; the caller owns its numbering scheme.
func (s *accountService) Create(actor models.Staff, id, name string, accountType models.AccountType) (*models.Account, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if id == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account id is required")
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if !accountType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account type must be DEBIT or CREDIT")
	}

	account := models.Account{ID: id, Name: name, Type: accountType}
	accounts := append(s.store.Accounts(), account)
	if err := s.store.ReplaceAccounts(accounts); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// Update merges the provided fields into an existing account.
// Administrator only.
func (s *accountService) Update(actor models.Staff, id string, fields AccountUpdateFields) (*models.Account, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	accounts := s.store.Accounts()
	for i, account := range accounts {
		if account.ID != id {
			continue
		}
		if fields.Name != nil && *fields.Name != "" {
			accounts[i].Name = *fields.Name
		}
		if fields.Type != nil {
			if !fields.Type.IsValid() {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account type must be DEBIT or CREDIT")
			}
			accounts[i].Type = *fields.Type
		}
		if err := s.store.ReplaceAccounts(accounts); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updated := accounts[i]
		return &updated, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

// Delete removes an account. Administrator only. Deletion does not cascade:
// transactions referencing the removed account keep their stored account id
// and still render, using that id as a plain label.
func (s *accountService) Delete(actor models.Staff, id string) (*models.Account, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	accounts := s.store.Accounts()
	idx := -1
	for i, account := range accounts {
		if account.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrAccountNotFound
	}

	deleted := accounts[idx]
	accounts = append(accounts[:idx], accounts[idx+1:]...)
	if err := s.store.ReplaceAccounts(accounts); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deleted, nil
}
