package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/taniteam/catatan/internal/ledger"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestStaff appends a staff member with a unique username to the
// roster and persists it.
func CreateTestStaff(t *testing.T, st *store.Store, role models.Role) *models.Staff {
	t.Helper()

	n := nextID()
	member := models.Staff{
		ID:       fmt.Sprintf("staff-test-%d", n),
		Name:     fmt.Sprintf("Test Staff %d", n),
		Username: fmt.Sprintf("teststaff%d", n),
		Role:     role,
	}
	if err := st.ReplaceStaff(append(st.Staff(), member)); err != nil {
		t.Fatalf("failed to create test staff: %v", err)
	}
	return &member
}

// CreateTestAccount appends an account with a unique id to the chart and
// persists it.
func CreateTestAccount(t *testing.T, st *store.Store, accountType models.AccountType) *models.Account {
	t.Helper()

	n := nextID()
	account := models.Account{
		ID:   fmt.Sprintf("TST-%d", n),
		Name: fmt.Sprintf("Test Account %d", n),
		Type: accountType,
	}
	if err := st.ReplaceAccounts(append(st.Accounts(), account)); err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return &account
}

// CreateTestTransaction prepends a transaction with the given signed amount
// (in whole rupiah) and persists it. The final balance snapshot is captured
// the way the real write path does: pre-insertion total plus this amount.
func CreateTestTransaction(t *testing.T, st *store.Store, staff *models.Staff, accountID string, amount int64) *models.Transaction {
	t.Helper()

	existing := st.Transactions()
	value := decimal.NewFromInt(amount)

	n := nextID()
	transaction := models.Transaction{
		ID:           fmt.Sprintf("trx-test-%d", n),
		Code:         fmt.Sprintf("TRX-TEST-%05d", n),
		Date:         models.Now(),
		StaffID:      staff.ID,
		StaffName:    staff.Name,
		CustomerName: fmt.Sprintf("Test Customer %d", n),
		CustomerUser: fmt.Sprintf("testcustomer%d", n),
		Amount:       value,
		FinalBalance: ledger.Summarize(existing).TotalBalance.Add(value),
		AccountID:    accountID,
	}
	if err := st.ReplaceTransactions(append([]models.Transaction{transaction}, existing...)); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &transaction
}

// ClearTransactions empties the transaction collection so balance tests can
// start from zero.
func ClearTransactions(t *testing.T, st *store.Store) {
	t.Helper()

	if err := st.ReplaceTransactions([]models.Transaction{}); err != nil {
		t.Fatalf("failed to clear transactions: %v", err)
	}
}
