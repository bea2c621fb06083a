package cmd

import (
	"fmt"

	"finboard/internal/cli"
	"finboard/internal/query"

	"github.com/spf13/cobra"
)

var (
	flagBillsSearch string
	flagBillsSort   string
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Recurring bills with paid and due-soon status",
	RunE:  runBills,
}

func init() {
	billsCmd.Flags().StringVarP(&flagBillsSearch, "search", "s", "", "Filter by name substring")
	billsCmd.Flags().StringVar(&flagBillsSort, "sort", query.SortLatest, "Sort order: latest, oldest, a-z, z-a, highest, lowest")
	rootCmd.AddCommand(billsCmd)
}

func runBills(_ *cobra.Command, _ []string) error {
	s, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	ds := s.Data()
	ref := referenceDate(cfg, ds)

	bills := query.RecurringBills(ds)
	sum := query.SummarizeBills(bills, ref)

	bills = query.SearchBills(bills, flagBillsSearch)
	bills = query.SortBills(bills, flagBillsSort)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECURRING BILLS"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Summary",
		Rows: [][]string{
			{"Paid Bills", fmt.Sprintf("%d (%s)", sum.PaidCount, cli.FormatMoney(sum.PaidAmount))},
			{"Total Upcoming", fmt.Sprintf("%d (%s)", sum.UpcomingCount, cli.FormatMoney(sum.UpcomingAmount))},
			{"Due Soon", fmt.Sprintf("%d (%s)", sum.DueSoonCount, cli.FormatMoney(sum.DueSoonAmount))},
		},
	}))
	fmt.Println()

	if len(bills) == 0 {
		fmt.Println(cli.Muted("No bills match."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		st := query.ClassifyBill(b, ref)
		status := st.String()
		if st == query.BillDueSoon {
			status = cli.Warn(status)
		}
		rows = append(rows, []string{
			cli.Truncate(b.Name, 28),
			cli.FormatMonthly(b.Date),
			cli.Amount(b.Amount),
			status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Bills",
		Headers:   []string{"Bill", "Due", "Amount", "Status"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 3: true},
	}))
	fmt.Println()
	return nil
}
