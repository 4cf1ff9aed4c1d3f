package models

import "github.com/shopspring/decimal"

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeDebit  AccountType = "DEBIT"
	AccountTypeCredit AccountType = "CREDIT"
)

// IsValid reports whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	return t == AccountTypeDebit || t == AccountTypeCredit
}

// Account is a named bucket that transactions reference. Its balance is
// never stored: the persisted balance field is always zero and the real
// figure is derived from the transaction collection on every read.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Type    AccountType     `json:"type"`
}
