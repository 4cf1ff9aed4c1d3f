package models

import "github.com/shopspring/decimal"

// Transaction is one cash movement recorded against an account. Amounts
// are signed: positive for inflow, negative for outflow.
//
// FinalBalance is the running company-wide balance captured once at
// insertion time (pre-insertion total plus this amount). It is a
// historical snapshot and is never recalculated, even when earlier
// transactions are edited or deleted.
type Transaction struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Date         DateTime        `json:"date"`
	StaffID      string          `json:"staffId"`
	StaffName    string          `json:"staffName"`
	CustomerName string          `json:"customerName"`
	CustomerUser string          `json:"customerUser"`
	Amount       decimal.Decimal `json:"amount"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
	Description  string          `json:"description"`
	AccountID    string          `json:"accountId"`
}
