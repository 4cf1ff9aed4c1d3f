package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SeedStaff returns the initial staff roster used when no staff document
// has been persisted yet.
func SeedStaff() []Staff {
	return []Staff{
		{ID: "1", Name: "Siti Nurhaliza", Username: "siti", Role: RoleStaff},
		{ID: "2", Name: "Budi Santoso", Username: "budi", Role: RoleStaff},
		{ID: "3", Name: "Andi Wijaya", Username: "andi", Role: RoleStaff},
		{ID: "4", Name: "Rahmat Hidayat", Username: "rahmat", Role: RoleStaff},
		{ID: "admin-1", Name: "Administrator", Username: AdminUsername, Role: RoleAdmin},
	}
}

// SeedAccounts returns the initial chart of accounts: fifteen operational
// accounts, every third one a CREDIT account.
func SeedAccounts() []Account {
	accounts := make([]Account, 0, 15)
	for i := 0; i < 15; i++ {
		accType := AccountTypeDebit
		if i%3 == 0 {
			accType = AccountTypeCredit
		}
		accounts = append(accounts, Account{
			ID:   fmt.Sprintf("ACC-%d", i+1),
			Name: fmt.Sprintf("Rekening Operasional %d", i+1),
			Type: accType,
		})
	}
	return accounts
}

// SeedTransactions returns the sample transaction log used on first load.
func SeedTransactions() []Transaction {
	return []Transaction{
		{
			ID:           "trx-1",
			Code:         "TRX20260211-01026",
			Date:         MustParseDateTime("2026-02-11T14:13:00"),
			StaffID:      "1",
			StaffName:    "Siti Nurhaliza",
			CustomerName: "PT Indo Gemilang",
			CustomerUser: "indogemilang_admin",
			Amount:       decimal.NewFromInt(-24295627),
			FinalBalance: decimal.NewFromInt(245000000),
			Description:  "Refund pelanggan",
			AccountID:    "ACC-1",
		},
		{
			ID:           "trx-2",
			Code:         "TRX20260211-01027",
			Date:         MustParseDateTime("2026-02-11T14:11:00"),
			StaffID:      "2",
			StaffName:    "Budi Santoso",
			CustomerName: "UD Cahaya Baru",
			CustomerUser: "cahaya_owner",
			Amount:       decimal.NewFromInt(32165282),
			FinalBalance: decimal.NewFromInt(269295627),
			Description:  "Penarikan tunai",
			AccountID:    "ACC-1",
		},
		{
			ID:           "trx-3",
			Code:         "TRX20260211-01028",
			Date:         MustParseDateTime("2026-02-11T14:11:00"),
			StaffID:      "3",
			StaffName:    "Andi Wijaya",
			CustomerName: "UD Cahaya Baru",
			CustomerUser: "cahaya_owner",
			Amount:       decimal.NewFromInt(-15201798),
			FinalBalance: decimal.NewFromInt(237130345),
			Description:  "Pembelian perlengkapan",
			AccountID:    "ACC-2",
		},
	}
}

// SeedAuditLog returns the initial (empty) audit collection.
func SeedAuditLog() []AuditEntry {
	return []AuditEntry{}
}
