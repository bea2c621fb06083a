package cmd

import (
	"fmt"
	"strconv"
	"time"

	"finboard/internal/cli"
	"finboard/internal/model"
	"finboard/internal/query"

	"github.com/spf13/cobra"
)

var (
	flagTxSearch   string
	flagTxSort     string
	flagTxCategory string
	flagTxPage     int
	flagTxPageSize int

	flagAddCategory  string
	flagAddDate      string
	flagAddRecurring bool
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Search, filter, and page through transactions",
	RunE:    runTransactions,
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add NAME AMOUNT",
	Short: "Record a new transaction",
	Args:  cobra.ExactArgs(2),
	RunE:  runTransactionsAdd,
}

func init() {
	transactionsCmd.Flags().StringVarP(&flagTxSearch, "search", "s", "", "Filter by name substring")
	transactionsCmd.Flags().StringVar(&flagTxSort, "sort", query.SortLatest, "Sort order: latest, oldest, a-z, z-a, highest, lowest")
	transactionsCmd.Flags().StringVarP(&flagTxCategory, "category", "c", "", "Filter by category")
	transactionsCmd.Flags().IntVarP(&flagTxPage, "page", "p", 1, "Page number")
	transactionsCmd.Flags().IntVar(&flagTxPageSize, "page-size", 0, "Results per page (default from config)")

	transactionsAddCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "General", "Transaction category")
	transactionsAddCmd.Flags().StringVar(&flagAddDate, "date", "", "Transaction date as YYYY-MM-DD (default today)")
	transactionsAddCmd.Flags().BoolVar(&flagAddRecurring, "recurring", false, "Mark as a recurring bill")

	transactionsCmd.AddCommand(transactionsAddCmd)
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(_ *cobra.Command, _ []string) error {
	s, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	pageSize := flagTxPageSize
	if pageSize <= 0 {
		pageSize = cfg.General.PageSize
	}

	res := query.FilteredTransactions(s.Data(), query.Filter{
		Search:   flagTxSearch,
		SortBy:   flagTxSort,
		Category: flagTxCategory,
		Page:     flagTxPage,
		PageSize: pageSize,
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRANSACTIONS"))
	fmt.Println()

	if len(res.Transactions) == 0 {
		fmt.Println(cli.Muted("No transactions match."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(res.Transactions))
	for _, t := range res.Transactions {
		recurring := ""
		if t.Recurring {
			recurring = "yes"
		}
		rows = append(rows, []string{
			cli.Truncate(t.Name, 28),
			t.Category,
			cli.FormatDate(t.Date),
			cli.Amount(t.Amount),
			recurring,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Name", "Category", "Date", "Amount", "Recurring"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true},
	}))
	fmt.Println()
	fmt.Println(cli.Muted(fmt.Sprintf("Page %d of %d (%d transactions)", flagTxPage, res.TotalPages, res.TotalCount)))
	fmt.Println()
	return nil
}

func runTransactionsAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	date := time.Now().Local()
	if flagAddDate != "" {
		date, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", flagAddDate)
		}
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t := model.Transaction{
		Name:      args[0],
		Category:  flagAddCategory,
		Date:      date,
		Amount:    amount,
		Recurring: flagAddRecurring,
	}
	if err := s.AddTransaction(t); err != nil {
		return err
	}

	fmt.Printf("Added %s %s (%s)\n", t.Name, cli.FormatMoney(t.Amount), cli.FormatDate(t.Date))
	return nil
}
