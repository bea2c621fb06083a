package cmd

import (
	"fmt"
	"strconv"

	"finboard/internal/cli"
	"finboard/internal/model"
	"finboard/internal/query"

	"github.com/spf13/cobra"
)

var flagPotTheme string

var potsCmd = &cobra.Command{
	Use:   "pots",
	Short: "Savings pots and progress toward targets",
	RunE:  runPots,
}

var potsAddCmd = &cobra.Command{
	Use:   "add NAME TARGET",
	Short: "Create a savings pot",
	Args:  cobra.ExactArgs(2),
	RunE:  runPotsAdd,
}

var potsRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Delete a pot and return its balance to the current balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runPotsRemove,
}

var potsDepositCmd = &cobra.Command{
	Use:   "deposit NAME AMOUNT",
	Short: "Move money from the current balance into a pot",
	Args:  cobra.ExactArgs(2),
	RunE:  runPotsDeposit,
}

var potsWithdrawCmd = &cobra.Command{
	Use:   "withdraw NAME AMOUNT",
	Short: "Move money from a pot back to the current balance",
	Args:  cobra.ExactArgs(2),
	RunE:  runPotsWithdraw,
}

func init() {
	potsAddCmd.Flags().StringVar(&flagPotTheme, "theme", "", "Theme color as #RRGGBB (default: next unused)")
	potsCmd.AddCommand(potsAddCmd, potsRemoveCmd, potsDepositCmd, potsWithdrawCmd)
	rootCmd.AddCommand(potsCmd)
}

func runPots(_ *cobra.Command, _ []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	ds := s.Data()

	fmt.Println()
	fmt.Println(cli.RenderTitle("POTS"))
	fmt.Println()

	if len(ds.Pots) == 0 {
		fmt.Println(cli.Muted("No pots. Create one with 'finboard pots add'."))
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(ds.Pots))
	for _, p := range ds.Pots {
		pct := 0.0
		if p.Target > 0 {
			pct = p.Total / p.Target
		}
		rows = append(rows, []string{
			p.Name,
			cli.FormatMoney(p.Total),
			cli.FormatMoney(p.Target),
			cli.FormatPercent(pct),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total Saved", cli.FormatMoney(query.TotalSaved(ds)), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Pot", "Saved", "Target", "Progress"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runPotsAdd(_ *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid target %q", args[1])
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	theme := flagPotTheme
	if theme == "" {
		theme = nextTheme(s.Data())
	}
	if err := s.AddPot(model.Pot{Name: args[0], Target: target, Theme: theme}); err != nil {
		return err
	}

	fmt.Printf("Pot %s created with target %s\n", args[0], cli.FormatMoney(target))
	return nil
}

func runPotsRemove(_ *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	pot, ok := s.Data().PotByName(args[0])
	if !ok {
		return fmt.Errorf("no pot named %q", args[0])
	}
	s.DeletePot(args[0])

	fmt.Printf("Pot %s removed, %s returned to balance\n", args[0], cli.FormatMoney(pot.Total))
	return nil
}

func runPotsDeposit(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	ds := s.Data()
	if _, ok := ds.PotByName(args[0]); !ok {
		return fmt.Errorf("no pot named %q", args[0])
	}
	if amount > ds.Balance.Current {
		return fmt.Errorf("amount exceeds current balance of %s", cli.FormatMoney(ds.Balance.Current))
	}
	if err := s.DepositToPot(args[0], amount); err != nil {
		return err
	}

	fmt.Printf("Deposited %s into %s\n", cli.FormatMoney(amount), args[0])
	return nil
}

func runPotsWithdraw(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	pot, ok := s.Data().PotByName(args[0])
	if !ok {
		return fmt.Errorf("no pot named %q", args[0])
	}
	if amount > pot.Total {
		return fmt.Errorf("amount exceeds pot balance of %s", cli.FormatMoney(pot.Total))
	}
	if err := s.WithdrawFromPot(args[0], amount); err != nil {
		return err
	}

	fmt.Printf("Withdrew %s from %s\n", cli.FormatMoney(amount), args[0])
	return nil
}
