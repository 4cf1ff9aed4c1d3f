// Package ledger derives balances and aggregate totals from the flat
// transaction log. Everything here is a pure function over its inputs:
// balances are never stored, they are recomputed on every query because
// the source collections may have just changed.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/taniteam/catatan/internal/models"
)

// Summary holds the three aggregate figures over the entire transaction
// collection, regardless of any active view filter.
type Summary struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// Summarize computes the aggregates. The three figures are accumulated
// independently: total balance sums every signed amount, total income sums
// strictly positive amounts, total expense is the absolute value of the
// sum of strictly negative amounts.
func Summarize(transactions []models.Transaction) Summary {
	totalBalance := decimal.Zero
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, t := range transactions {
		totalBalance = totalBalance.Add(t.Amount)
		if t.Amount.IsPositive() {
			totalIncome = totalIncome.Add(t.Amount)
		}
		if t.Amount.IsNegative() {
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	return Summary{
		TotalBalance: totalBalance,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense.Abs(),
	}
}

// Balance returns the balance of one account: the sum of amounts of all
// transactions referencing it. An account with no transactions has a zero
// balance.
func Balance(accountID string, transactions []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.AccountID == accountID {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// AccountBalances returns a copy of the account collection with each
// account's derived balance filled in.
func AccountBalances(accounts []models.Account, transactions []models.Transaction) []models.Account {
	sums := make(map[string]decimal.Decimal, len(accounts))
	for _, t := range transactions {
		sums[t.AccountID] = sums[t.AccountID].Add(t.Amount)
	}

	result := make([]models.Account, len(accounts))
	for i, acc := range accounts {
		acc.Balance = sums[acc.ID]
		result[i] = acc
	}
	return result
}
