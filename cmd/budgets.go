package cmd

import (
	"fmt"
	"strconv"

	"finboard/internal/cli"
	"finboard/internal/model"
	"finboard/internal/query"

	"github.com/spf13/cobra"
)

var flagBudgetTheme string

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Monthly spending against category budgets",
	RunE:  runBudgets,
}

var budgetsAddCmd = &cobra.Command{
	Use:   "add CATEGORY MAXIMUM",
	Short: "Create a budget for a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetsAdd,
}

var budgetsSetCmd = &cobra.Command{
	Use:   "set CATEGORY MAXIMUM",
	Short: "Change the maximum of an existing budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetsSet,
}

var budgetsRemoveCmd = &cobra.Command{
	Use:   "remove CATEGORY",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsRemove,
}

func init() {
	budgetsAddCmd.Flags().StringVar(&flagBudgetTheme, "theme", "", "Theme color as #RRGGBB (default: next unused)")
	budgetsCmd.AddCommand(budgetsAddCmd, budgetsSetCmd, budgetsRemoveCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
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
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s %d", month, year)))
	fmt.Println()

	summaries := query.BudgetSummaries(ds, month, year)
	if len(summaries) == 0 {
		fmt.Println(cli.Muted("No budgets. Create one with 'finboard budgets add'."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, b := range summaries {
		spent := cli.FormatMoney(b.Spent)
		if b.Spent > b.Maximum {
			spent = cli.Warn(spent)
		}
		rows = append(rows, []string{
			b.Category,
			spent,
			cli.FormatMoney(b.Remaining),
			cli.FormatMoney(b.Maximum),
			cli.FormatPercent(b.Utilization),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent", "Remaining", "Maximum", "Used"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

// nextTheme picks the first palette color no existing budget or pot uses.
func nextTheme(ds model.Dataset) string {
	used := make(map[string]bool)
	for _, b := range ds.Budgets {
		used[b.Theme] = true
	}
	for _, p := range ds.Pots {
		used[p.Theme] = true
	}
	for _, c := range model.ThemeColors {
		if !used[c.Color] {
			return c.Color
		}
	}
	return model.ThemeColors[0].Color
}

func runBudgetsAdd(_ *cobra.Command, args []string) error {
	maximum, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid maximum %q", args[1])
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	theme := flagBudgetTheme
	if theme == "" {
		theme = nextTheme(s.Data())
	}
	if err := s.AddBudget(model.Budget{Category: args[0], Maximum: maximum, Theme: theme}); err != nil {
		return err
	}

	fmt.Printf("Budget %s set to %s\n", args[0], cli.FormatMoney(maximum))
	return nil
}

func runBudgetsSet(_ *cobra.Command, args []string) error {
	maximum, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid maximum %q", args[1])
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	existing, ok := s.Data().BudgetByCategory(args[0])
	if !ok {
		return fmt.Errorf("no budget for category %q", args[0])
	}
	existing.Maximum = maximum
	if err := s.UpdateBudget(existing); err != nil {
		return err
	}

	fmt.Printf("Budget %s set to %s\n", args[0], cli.FormatMoney(maximum))
	return nil
}

func runBudgetsRemove(_ *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	s.DeleteBudget(args[0])
	fmt.Printf("Budget %s removed\n", args[0])
	return nil
}
