// Package query computes derived views over a dataset snapshot.
//
// Everything here is a pure function: same snapshot and parameters, same
// result, no side effects. Records that fail model.Transaction.Valid are
// skipped so a single malformed entry never breaks a derived view.
package query

import (
	"sort"
	"strings"
	"time"

	"finboard/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders accepted by FilteredTransactions and the bills list.
// Unknown values fall back to SortLatest.
const (
	SortLatest  = "latest"
	SortOldest  = "oldest"
	SortAZ      = "a-z"
	SortZA      = "z-a"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// Option is a value/label pair for sort and category pickers.
type Option struct {
	Value string
	Label string
}

// SortOptions is the ordered list of sort choices offered by the UI.
var SortOptions = []Option{
	{Value: SortLatest, Label: "Latest"},
	{Value: SortOldest, Label: "Oldest"},
	{Value: SortAZ, Label: "A to Z"},
	{Value: SortZA, Label: "Z to A"},
	{Value: SortHighest, Label: "Highest"},
	{Value: SortLowest, Label: "Lowest"},
}

// collator provides locale-aware name comparison for a-z / z-a sorts.
var collator = collate.New(language.English)

// Filter holds the transient list state the UI passes in on every render.
type Filter struct {
	Search   string
	SortBy   string
	Category string // model.AllTransactions disables the category filter
	Page     int    // 1-based
	PageSize int
}

// Result is one page of filtered transactions plus pagination counts.
type Result struct {
	Transactions []model.Transaction
	TotalCount   int
	TotalPages   int
}

// TransactionsByCategory returns transactions exactly matching the category.
func TransactionsByCategory(ds model.Dataset, category string) []model.Transaction {
	var out []model.Transaction
	for _, t := range ds.Transactions {
		if t.Valid() && t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// LatestTransactionsByCategory returns the most recent limit transactions in
// the category, newest first. A non-positive limit defaults to 3.
func LatestTransactionsByCategory(ds model.Dataset, category string, limit int) []model.Transaction {
	if limit <= 0 {
		limit = 3
	}
	matched := TransactionsByCategory(ds, category)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// MonthlySpentByCategory sums the absolute value of expenses in the category
// for the given calendar month. Income (positive amounts) is excluded.
func MonthlySpentByCategory(ds model.Dataset, category string, month time.Month, year int) float64 {
	var total float64
	for _, t := range ds.Transactions {
		if !t.Valid() || t.Category != category || t.Amount >= 0 {
			continue
		}
		local := t.Date.Local()
		if local.Month() == month && local.Year() == year {
			total += -t.Amount
		}
	}
	return total
}

// RecurringBills returns the latest instance of each recurring vendor,
// ordered by vendor name ascending so the output is deterministic.
func RecurringBills(ds model.Dataset) []model.Transaction {
	latest := make(map[string]model.Transaction)
	for _, t := range ds.Transactions {
		if !t.Valid() || !t.Recurring {
			continue
		}
		if prev, ok := latest[t.Name]; !ok || t.Date.After(prev.Date) {
			latest[t.Name] = t
		}
	}

	bills := make([]model.Transaction, 0, len(latest))
	for _, t := range latest {
		bills = append(bills, t)
	}
	sort.SliceStable(bills, func(i, j int) bool {
		return collator.CompareString(bills[i].Name, bills[j].Name) < 0
	})
	return bills
}

// FilteredTransactions applies the search/category/sort/pagination pipeline.
// Page numbers past the end yield an empty page; no clamping is performed.
func FilteredTransactions(ds model.Dataset, f Filter) Result {
	if f.PageSize <= 0 {
		f.PageSize = 10
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	var filtered []model.Transaction
	search := strings.ToLower(f.Search)
	for _, t := range ds.Transactions {
		if !t.Valid() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		if f.Category != "" && f.Category != model.AllTransactions && t.Category != f.Category {
			continue
		}
		filtered = append(filtered, t)
	}

	filtered = sortTransactions(filtered, f.SortBy)

	totalCount := len(filtered)
	totalPages := (totalCount + f.PageSize - 1) / f.PageSize

	start := (f.Page - 1) * f.PageSize
	end := start + f.PageSize
	var page []model.Transaction
	if start < totalCount {
		if end > totalCount {
			end = totalCount
		}
		page = filtered[start:end]
	}

	return Result{
		Transactions: page,
		TotalCount:   totalCount,
		TotalPages:   totalPages,
	}
}

// sortTransactions orders txns per sortBy. Date orders delegate to the
// two-level day bucketing of SortWithinDays; the rest sort in place.
func sortTransactions(txns []model.Transaction, sortBy string) []model.Transaction {
	switch sortBy {
	case SortAZ:
		sort.SliceStable(txns, func(i, j int) bool {
			return collator.CompareString(txns[i].Name, txns[j].Name) < 0
		})
	case SortZA:
		sort.SliceStable(txns, func(i, j int) bool {
			return collator.CompareString(txns[i].Name, txns[j].Name) > 0
		})
	case SortHighest:
		// Signed: an income of +100 ranks above an expense of -500.
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Amount > txns[j].Amount
		})
	case SortLowest:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Amount < txns[j].Amount
		})
	default: // SortLatest, SortOldest and anything unrecognized
		return SortWithinDays(txns, sortBy)
	}
	return txns
}

// LatestMonth returns the calendar month of the newest valid transaction, the
// natural reference month for budget progress when no override is given.
// Falls back to the current month for an empty dataset.
func LatestMonth(ds model.Dataset) (time.Month, int) {
	ref := ReferenceDate(ds)
	return ref.Month(), ref.Year()
}

// ReferenceDate returns the newest valid transaction date in local time, or
// the current time if the dataset has no valid transactions.
func ReferenceDate(ds model.Dataset) time.Time {
	var newest time.Time
	for _, t := range ds.Transactions {
		if t.Valid() && t.Date.After(newest) {
			newest = t.Date
		}
	}
	if newest.IsZero() {
		return time.Now().Local()
	}
	return newest.Local()
}
