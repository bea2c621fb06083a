package query

import (
	"reflect"
	"testing"
	"time"

	"finboard/internal/model"
)

func bill(t *testing.T, name, when string, amount float64) model.Transaction {
	t.Helper()
	tr := tx(t, name, "Bills", when, amount)
	tr.Recurring = true
	return tr
}

func TestClassifyBill(t *testing.T) {
	ref := date(t, "2024-08-19 14:00")

	cases := []struct {
		name string
		when string
		want BillStatus
	}{
		{"on reference date", "2024-08-19 14:00", BillPaid},
		{"before reference", "2024-08-02 09:00", BillPaid},
		{"two days after", "2024-08-21 09:00", BillDueSoon},
		{"five days after", "2024-08-24 13:00", BillDueSoon},
		{"well after", "2024-08-29 09:00", BillUpcoming},
	}
	for _, tc := range cases {
		got := ClassifyBill(bill(t, "X", tc.when, -10), ref)
		if got != tc.want {
			t.Errorf("%s: ClassifyBill = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSummarizeBills(t *testing.T) {
	ref := date(t, "2024-08-19 14:00")
	bills := []model.Transaction{
		bill(t, "Paid One", "2024-08-02 09:00", -100),
		bill(t, "Paid Two", "2024-08-10 09:00", -25.50),
		bill(t, "Soon", "2024-08-22 09:00", -40),
		bill(t, "Later", "2024-08-30 09:00", -9.99),
	}

	sum := SummarizeBills(bills, ref)
	if sum.Total != 4 {
		t.Errorf("Total = %d, want 4", sum.Total)
	}
	if sum.PaidCount != 2 || sum.PaidAmount != 125.50 {
		t.Errorf("Paid = (%d, %.2f), want (2, 125.50)", sum.PaidCount, sum.PaidAmount)
	}
	// Due-soon bills count under upcoming too.
	if sum.UpcomingCount != 2 || sum.UpcomingAmount != 49.99 {
		t.Errorf("Upcoming = (%d, %.2f), want (2, 49.99)", sum.UpcomingCount, sum.UpcomingAmount)
	}
	if sum.DueSoonCount != 1 || sum.DueSoonAmount != 40 {
		t.Errorf("DueSoon = (%d, %.2f), want (1, 40.00)", sum.DueSoonCount, sum.DueSoonAmount)
	}
}

func TestSortBills_DayOfMonthAndAbsoluteAmount(t *testing.T) {
	bills := []model.Transaction{
		bill(t, "Mid", "2024-08-15 09:00", -35),
		bill(t, "Early", "2024-07-02 09:00", -100),
		bill(t, "Late", "2024-08-28 09:00", -9.99),
	}

	byDay := SortBills(bills, SortLatest)
	want := []string{"Early", "Mid", "Late"} // day of month 2, 15, 28
	if !reflect.DeepEqual(names(byDay), want) {
		t.Errorf("latest order = %v, want day-of-month %v", names(byDay), want)
	}

	byAmount := SortBills(bills, SortHighest)
	want = []string{"Early", "Mid", "Late"} // |−100| > |−35| > |−9.99|
	if !reflect.DeepEqual(names(byAmount), want) {
		t.Errorf("highest order = %v, want absolute amounts %v", names(byAmount), want)
	}

	byAmountAsc := SortBills(bills, SortLowest)
	want = []string{"Late", "Mid", "Early"}
	if !reflect.DeepEqual(names(byAmountAsc), want) {
		t.Errorf("lowest order = %v, want %v", names(byAmountAsc), want)
	}
}

func TestSortBills_DoesNotMutateInput(t *testing.T) {
	bills := []model.Transaction{
		bill(t, "B", "2024-08-15 09:00", -35),
		bill(t, "A", "2024-08-02 09:00", -100),
	}
	before := names(bills)

	SortBills(bills, SortAZ)
	if !reflect.DeepEqual(names(bills), before) {
		t.Error("SortBills mutated its input")
	}
}

func TestSearchBills(t *testing.T) {
	bills := []model.Transaction{
		bill(t, "Aqua Flow Utilities", "2024-08-02 09:00", -100),
		bill(t, "Nimbus Data Storage", "2024-08-21 09:00", -9.99),
	}

	got := SearchBills(bills, "aqua")
	if len(got) != 1 || got[0].Name != "Aqua Flow Utilities" {
		t.Errorf("SearchBills(aqua) = %v, want just Aqua Flow Utilities", names(got))
	}
	if got := SearchBills(bills, ""); len(got) != 2 {
		t.Errorf("empty search returned %d bills, want all 2", len(got))
	}
}

func TestBudgetSummaries(t *testing.T) {
	ds := model.Dataset{
		Budgets: []model.Budget{
			{Category: "Bills", Maximum: 200, Theme: "#82C9D7"},
			{Category: "Dining Out", Maximum: 50, Theme: "#F4BC52"},
		},
		Transactions: []model.Transaction{
			tx(t, "Power Co", "Bills", "2024-08-10 10:00", -120),
			tx(t, "Bistro", "Dining Out", "2024-08-11 19:00", -80), // over budget
			tx(t, "Old Bill", "Bills", "2024-07-10 10:00", -500),   // other month
		},
	}

	got := BudgetSummaries(ds, time.August, 2024)
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}

	bills := got[0]
	if bills.Spent != 120 || bills.Remaining != 80 {
		t.Errorf("Bills = spent %.2f remaining %.2f, want 120.00 / 80.00", bills.Spent, bills.Remaining)
	}
	if bills.Utilization != 0.6 {
		t.Errorf("Bills utilization = %.2f, want 0.60", bills.Utilization)
	}

	dining := got[1]
	if dining.Spent != 80 {
		t.Errorf("Dining Out spent = %.2f, want 80.00", dining.Spent)
	}
	if dining.Remaining != 0 {
		t.Errorf("Dining Out remaining = %.2f, want floored 0.00", dining.Remaining)
	}
	if dining.Utilization != 1.6 {
		t.Errorf("Dining Out utilization = %.2f, want 1.60", dining.Utilization)
	}
}

func TestRecentTransactions(t *testing.T) {
	ds := model.Dataset{Transactions: []model.Transaction{
		tx(t, "Old", "General", "2024-08-01 10:00", -10),
		tx(t, "New", "General", "2024-08-19 10:00", -20),
		tx(t, "Mid", "General", "2024-08-10 10:00", -30),
		{Name: "", Category: "General", Date: date(t, "2024-08-20 10:00"), Amount: -5},
	}}

	got := RecentTransactions(ds, 2)
	want := []string{"New", "Mid"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("RecentTransactions = %v, want %v (invalid skipped)", names(got), want)
	}
}

func TestTotalSavedAndDerivedTotals(t *testing.T) {
	ds := model.Dataset{
		Pots: []model.Pot{
			{Name: "Savings", Target: 2000, Total: 159},
			{Name: "Holiday", Target: 1440, Total: 531},
		},
		Transactions: []model.Transaction{
			tx(t, "Salary", "General", "2024-08-01 10:00", 3000),
			tx(t, "Rent", "Bills", "2024-08-02 10:00", -1200),
			tx(t, "Grocer", "Groceries", "2024-08-03 10:00", -80.50),
		},
	}

	if got := TotalSaved(ds); got != 690 {
		t.Errorf("TotalSaved = %.2f, want 690.00", got)
	}

	totals := DerivedTotals(ds)
	if totals.Income != 3000 {
		t.Errorf("Income = %.2f, want 3000.00", totals.Income)
	}
	if totals.Expenses != 1280.50 {
		t.Errorf("Expenses = %.2f, want 1280.50", totals.Expenses)
	}
}
