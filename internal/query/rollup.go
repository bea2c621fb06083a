package query

import (
	"sort"
	"strings"
	"time"

	"finboard/internal/model"
)

// BillStatus classifies a recurring bill relative to the reference date.
type BillStatus int

const (
	BillPaid BillStatus = iota
	BillDueSoon
	BillUpcoming
)

// dueSoonWindow is how far past the reference date a bill still counts as
// due soon.
const dueSoonWindow = 5 * 24 * time.Hour

// String returns the display label for the status.
func (s BillStatus) String() string {
	switch s {
	case BillPaid:
		return "Paid"
	case BillDueSoon:
		return "Due Soon"
	default:
		return "Upcoming"
	}
}

// ClassifyBill returns the bill's status relative to ref: paid if its date is
// on or before ref, due soon if it falls within five days after ref, upcoming
// otherwise.
func ClassifyBill(bill model.Transaction, ref time.Time) BillStatus {
	if !bill.Date.After(ref) {
		return BillPaid
	}
	if bill.Date.Sub(ref) <= dueSoonWindow {
		return BillDueSoon
	}
	return BillUpcoming
}

// BillsSummary aggregates the recurring-bill list for the bills page header.
type BillsSummary struct {
	Total          int
	TotalAmount    float64
	PaidCount      int
	PaidAmount     float64
	UpcomingCount  int
	UpcomingAmount float64
	DueSoonCount   int
	DueSoonAmount  float64
}

// SummarizeBills computes paid/upcoming/due-soon counts and totals relative
// to ref. Due-soon bills are counted under both upcoming and due soon, the
// way the bills page presents them. Amounts are absolute values.
func SummarizeBills(bills []model.Transaction, ref time.Time) BillsSummary {
	var sum BillsSummary
	for _, b := range bills {
		amount := b.Amount
		if amount < 0 {
			amount = -amount
		}
		sum.Total++
		sum.TotalAmount += amount

		switch ClassifyBill(b, ref) {
		case BillPaid:
			sum.PaidCount++
			sum.PaidAmount += amount
		case BillDueSoon:
			sum.DueSoonCount++
			sum.DueSoonAmount += amount
			sum.UpcomingCount++
			sum.UpcomingAmount += amount
		case BillUpcoming:
			sum.UpcomingCount++
			sum.UpcomingAmount += amount
		}
	}
	return sum
}

// SearchBills filters bills by case-insensitive substring match on name.
func SearchBills(bills []model.Transaction, search string) []model.Transaction {
	if search == "" {
		return bills
	}
	needle := strings.ToLower(search)
	var out []model.Transaction
	for _, b := range bills {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			out = append(out, b)
		}
	}
	return out
}

// SortBills orders a recurring-bill list. Bills repeat monthly, so "latest"
// and "oldest" order by day of month (both ascending, matching the monthly
// payment schedule reading order); highest/lowest use absolute amounts since
// bills are expenses.
func SortBills(bills []model.Transaction, sortBy string) []model.Transaction {
	out := make([]model.Transaction, len(bills))
	copy(out, bills)

	switch sortBy {
	case SortAZ:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortZA:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) > 0
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			return abs(out[i].Amount) > abs(out[j].Amount)
		})
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool {
			return abs(out[i].Amount) < abs(out[j].Amount)
		})
	default: // latest, oldest, unknown
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Local().Day() < out[j].Date.Local().Day()
		})
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// BudgetSummary is one budget with its spend progress for a month.
type BudgetSummary struct {
	model.Budget
	Spent       float64
	Remaining   float64 // floored at zero for display
	Utilization float64 // Spent / Maximum
}

// BudgetSummaries computes per-budget monthly spend for every budget in the
// dataset, in dataset order.
func BudgetSummaries(ds model.Dataset, month time.Month, year int) []BudgetSummary {
	out := make([]BudgetSummary, 0, len(ds.Budgets))
	for _, b := range ds.Budgets {
		spent := MonthlySpentByCategory(ds, b.Category, month, year)
		remaining := b.Maximum - spent
		if remaining < 0 {
			remaining = 0
		}
		var utilization float64
		if b.Maximum > 0 {
			utilization = spent / b.Maximum
		}
		out = append(out, BudgetSummary{
			Budget:      b,
			Spent:       spent,
			Remaining:   remaining,
			Utilization: utilization,
		})
	}
	return out
}

// RecentTransactions returns the n newest valid transactions, newest first.
func RecentTransactions(ds model.Dataset, n int) []model.Transaction {
	var valid []model.Transaction
	for _, t := range ds.Transactions {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.After(valid[j].Date)
	})
	if len(valid) > n {
		valid = valid[:n]
	}
	return valid
}

// TotalSaved sums the totals of all pots.
func TotalSaved(ds model.Dataset) float64 {
	var total float64
	for _, p := range ds.Pots {
		total += p.Total
	}
	return total
}

// Totals holds income and expense sums recomputed from the transaction log,
// the derived counterpart to the independently stored balance fields.
type Totals struct {
	Income   float64
	Expenses float64
}

// DerivedTotals recomputes income and expense totals from the transactions.
func DerivedTotals(ds model.Dataset) Totals {
	var t Totals
	for _, tx := range ds.Transactions {
		if !tx.Valid() {
			continue
		}
		if tx.Amount >= 0 {
			t.Income += tx.Amount
		} else {
			t.Expenses += -tx.Amount
		}
	}
	return t
}
