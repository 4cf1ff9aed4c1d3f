package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/taniteam/catatan/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", AccountID: "ACC-1", Amount: decimal.NewFromInt(-24295627)},
		{ID: "t2", AccountID: "ACC-1", Amount: decimal.NewFromInt(32165282)},
		{ID: "t3", AccountID: "ACC-2", Amount: decimal.NewFromInt(-15201798)},
	}
}

func TestSummarize(t *testing.T) {
	t.Run("returns zeros for an empty collection", func(t *testing.T) {
		s := Summarize(nil)
		if !s.TotalBalance.IsZero() || !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() {
			t.Errorf("expected all-zero summary, got %+v", s)
		}
	})

	t.Run("accumulates the three figures independently", func(t *testing.T) {
		s := Summarize(sampleTransactions())

		if !s.TotalBalance.Equal(decimal.NewFromInt(-7332143)) {
			t.Errorf("expected total balance -7332143, got %s", s.TotalBalance)
		}
		if !s.TotalIncome.Equal(decimal.NewFromInt(32165282)) {
			t.Errorf("expected total income 32165282, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.NewFromInt(39497425)) {
			t.Errorf("expected total expense 39497425, got %s", s.TotalExpense)
		}
	})

	t.Run("total balance equals income minus expense", func(t *testing.T) {
		s := Summarize(sampleTransactions())

		if !s.TotalBalance.Equal(s.TotalIncome.Sub(s.TotalExpense)) {
			t.Errorf("identity violated: balance %s, income %s, expense %s",
				s.TotalBalance, s.TotalIncome, s.TotalExpense)
		}
	})

	t.Run("expense is reported as an absolute value", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			{Amount: decimal.NewFromInt(-500)},
		})
		if s.TotalExpense.IsNegative() {
			t.Errorf("expected non-negative expense, got %s", s.TotalExpense)
		}
	})
}

func TestBalance(t *testing.T) {
	transactions := sampleTransactions()

	t.Run("sums only the account's own transactions", func(t *testing.T) {
		if got := Balance("ACC-1", transactions); !got.Equal(decimal.NewFromInt(7869655)) {
			t.Errorf("expected 7869655, got %s", got)
		}
		if got := Balance("ACC-2", transactions); !got.Equal(decimal.NewFromInt(-15201798)) {
			t.Errorf("expected -15201798, got %s", got)
		}
	})

	t.Run("account with no transactions has zero balance", func(t *testing.T) {
		if got := Balance("ACC-99", transactions); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestAccountBalances(t *testing.T) {
	t.Run("fills derived balances without touching the input", func(t *testing.T) {
		accounts := []models.Account{
			{ID: "ACC-1", Name: "Kas Utama", Type: models.AccountTypeDebit},
			{ID: "ACC-2", Name: "Kas Kedua", Type: models.AccountTypeDebit},
			{ID: "ACC-3", Name: "Kas Ketiga", Type: models.AccountTypeCredit},
		}

		result := AccountBalances(accounts, sampleTransactions())

		if !result[0].Balance.Equal(decimal.NewFromInt(7869655)) {
			t.Errorf("expected ACC-1 balance 7869655, got %s", result[0].Balance)
		}
		if !result[1].Balance.Equal(decimal.NewFromInt(-15201798)) {
			t.Errorf("expected ACC-2 balance -15201798, got %s", result[1].Balance)
		}
		if !result[2].Balance.IsZero() {
			t.Errorf("expected ACC-3 balance zero, got %s", result[2].Balance)
		}
		if !accounts[0].Balance.IsZero() {
			t.Error("input slice must not be mutated")
		}
	})

	t.Run("ignores transactions referencing unknown accounts", func(t *testing.T) {
		accounts := []models.Account{{ID: "ACC-1"}}
		transactions := []models.Transaction{
			{AccountID: "ACC-1", Amount: decimal.NewFromInt(100)},
			{AccountID: "GONE", Amount: decimal.NewFromInt(999)},
		}

		result := AccountBalances(accounts, transactions)

		if len(result) != 1 {
			t.Fatalf("expected 1 account, got %d", len(result))
		}
		if !result[0].Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected balance 100, got %s", result[0].Balance)
		}
	})
}
