// Package report produces the downloadable CSV rendition of the currently
// displayed transaction sequence.
package report

import (
	"strings"
	"time"

	"github.com/taniteam/catatan/internal/format"
	"github.com/taniteam/catatan/internal/models"
)

// bom is the UTF-8 byte order mark, prepended for spreadsheet
// compatibility.
const bom = "\uFEFF"

var csvHeaders = []string{
	"No. Transaksi",
	"Tanggal",
	"Pelanggan",
	"User Pelanggan",
	"Rekening",
	"Jumlah (IDR)",
	"Staff Pencatat",
	"Keterangan",
}

// TransactionsCSV renders the given (already filtered and sorted)
// transactions as a CSV document. Every field except the raw numeric
// amount is wrapped in double quotes with inner quotes doubled; a blank
// description is exported as a dash.
func TransactionsCSV(transactions []models.Transaction) []byte {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(strings.Join(csvHeaders, ","))

	for _, t := range transactions {
		description := t.Description
		if description == "" {
			description = "-"
		}
		row := []string{
			quote(t.Code),
			quote(format.Date(t.Date)),
			quote(t.CustomerName),
			quote(t.CustomerUser),
			quote(t.AccountID),
			t.Amount.String(),
			quote(t.StaffName),
			quote(description),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return []byte(b.String())
}

// Filename suggests a report file name embedding the export date and,
// when active, the account scope and a truncated search query.
func Filename(now time.Time, accountID, query string) string {
	name := "Laporan_Keuangan_" + now.Format("2006-01-02")
	if accountID != "" {
		name += "_Bank_" + accountID
	}
	if query != "" {
		truncated := query
		if len(truncated) > 10 {
			truncated = truncated[:10]
		}
		name += "_Search_" + truncated
	}
	return name + ".csv"
}

// quote wraps a value in double quotes, doubling any inner quotes.
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
