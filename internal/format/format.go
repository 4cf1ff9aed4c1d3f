// Package format renders amounts and timestamps the way the back office
// reads them: Indonesian rupiah with dot thousand separators and id-ID
// short dates.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taniteam/catatan/internal/models"
)

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Rupiah formats an amount as Indonesian currency, e.g. Rp24.295.627.
// Negative amounts carry a leading minus sign.
func Rupiah(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "Rp" + group(amount.Abs())
}

// SignedRupiah formats an amount with an explicit sign prefix the way the
// transaction list renders it: +Rp… for inflows, -Rp… for outflows.
func SignedRupiah(amount decimal.Decimal) string {
	sign := "+"
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "Rp" + group(amount.Abs())
}

// group renders a non-negative decimal with dot thousand separators and,
// when present, a comma-separated fractional part (id-ID convention).
func group(d decimal.Decimal) string {
	s := d.String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// Date renders a timestamp as an id-ID short date, e.g. "11 Feb 2026 14.13".
func Date(dt models.DateTime) string {
	t := dt.Time
	return fmt.Sprintf("%02d %s %d %02d.%02d",
		t.Day(), monthAbbrev[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
