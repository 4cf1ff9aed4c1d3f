// Package view composes the account-scope, date-range, free-text and
// tab-mode filters into the displayed transaction sequence. Like the
// ledger derivations it has no side effects: every predicate is
// re-evaluated on any change to the filter inputs or the underlying
// collection.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/taniteam/catatan/internal/models"
)

// Tab selects which derived view is rendered.
type Tab string

const (
	TabRecent   Tab = "RECENT"
	TabAll      Tab = "ALL"
	TabAccounts Tab = "ACCOUNTS"
	TabLogs     Tab = "LOGS"
)

// IsValid reports whether the tab is one of the known modes.
func (t Tab) IsValid() bool {
	switch t {
	case TabRecent, TabAll, TabAccounts, TabLogs:
		return true
	}
	return false
}

// RecentLimit is the number of entries shown on the recent tab when no
// filter is active.
const RecentLimit = 10

// Filter holds the optional restrictions applied to the transaction view.
// StartDate and EndDate are calendar days: the range is inclusive, from
// 00:00:00 of the start day to 23:59:59.999 of the end day in local time.
type Filter struct {
	AccountID string
	StartDate *models.DateTime
	EndDate   *models.DateTime
	Query     string
	Tab       Tab
}

// Active reports whether any scope, date or search restriction is set.
// The tab on its own is not a filter.
func (f Filter) Active() bool {
	return f.AccountID != "" ||
		f.StartDate != nil ||
		f.EndDate != nil ||
		strings.TrimSpace(f.Query) != ""
}

// Apply produces the ordered transaction sequence to display: scope, then
// date range, then search, then a stable sort descending by date. When the
// recent tab is active and no filter is set, only the first RecentLimit
// entries are returned.
func Apply(transactions []models.Transaction, f Filter) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if matches(t, f) {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date.Time)
	})

	if f.Tab == TabRecent && !f.Active() && len(filtered) > RecentLimit {
		return filtered[:RecentLimit]
	}
	return filtered
}

func matches(t models.Transaction, f Filter) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}

	if f.StartDate != nil && t.Date.Before(startOfDay(f.StartDate.Time)) {
		return false
	}
	if f.EndDate != nil && t.Date.After(endOfDay(f.EndDate.Time)) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !containsFold(q, t.Code, t.CustomerName, t.CustomerUser, t.StaffName, t.Description, t.AccountID) {
			return false
		}
	}
	return true
}

// containsFold reports whether the lowercased query is a substring of any
// of the given fields, compared case-insensitively.
func containsFold(query string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.Local)
}
