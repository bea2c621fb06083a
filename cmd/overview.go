package cmd

import (
	"fmt"

	"finboard/internal/cli"
	"finboard/internal/query"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Balance, pots, budgets, and bills at a glance",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	s, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	ds := s.Data()
	month, year, err := referenceMonth(cfg, ds)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("OVERVIEW  %s %d", month, year)))
	fmt.Println()

	// Balance card
	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Balance",
		Rows: [][]string{
			{"Current", cli.FormatMoney(ds.Balance.Current)},
			{"Income", cli.FormatMoney(ds.Balance.Income)},
			{"Expenses", cli.FormatMoney(ds.Balance.Expenses)},
		},
	}))
	fmt.Println()

	// Pots summary
	if len(ds.Pots) > 0 {
		rows := [][]string{
			{"Total Saved", cli.FormatMoney(query.TotalSaved(ds))},
			{"---"},
		}
		for _, p := range ds.Pots {
			rows = append(rows, []string{p.Name, cli.FormatMoney(p.Total)})
		}
		fmt.Print(cli.RenderTable(cli.Table{Title: "Pots", Rows: rows}))
		fmt.Println()
	}

	// Budget progress for the reference month
	summaries := query.BudgetSummaries(ds, month, year)
	if len(summaries) > 0 {
		rows := make([][]string, 0, len(summaries))
		for _, b := range summaries {
			spent := cli.FormatMoney(b.Spent)
			if b.Spent > b.Maximum {
				spent = cli.Warn(spent)
			}
			rows = append(rows, []string{
				b.Category,
				spent,
				cli.FormatMoney(b.Maximum),
				cli.FormatPercent(b.Utilization),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Budgets",
			Headers: []string{"Category", "Spent", "Maximum", "Used"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	// Recent transactions
	recent := query.RecentTransactions(ds, 5)
	if len(recent) > 0 {
		rows := make([][]string, 0, len(recent))
		for _, t := range recent {
			rows = append(rows, []string{
				cli.Truncate(t.Name, 28),
				cli.Amount(t.Amount),
				cli.FormatDate(t.Date),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent Transactions",
			Headers: []string{"Name", "Amount", "Date"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	// Recurring bills recap
	bills := query.RecurringBills(ds)
	if len(bills) > 0 {
		sum := query.SummarizeBills(bills, referenceDate(cfg, ds))
		fmt.Print(cli.RenderTable(cli.Table{
			Title: "Recurring Bills",
			Rows: [][]string{
				{"Paid Bills", cli.FormatMoney(sum.PaidAmount)},
				{"Total Upcoming", cli.FormatMoney(sum.UpcomingAmount)},
				{"Due Soon", cli.FormatMoney(sum.DueSoonAmount)},
			},
		}))
		fmt.Println()
	}

	return nil
}
