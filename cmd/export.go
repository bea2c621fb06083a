package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"finboard/internal/model"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write the full dataset as JSON to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the dataset with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	blob, err := json.MarshalIndent(s.Data(), "", "  ")
	if err != nil {
		return fmt.Errorf("serializing dataset: %w", err)
	}
	blob = append(blob, '\n')

	if len(args) == 0 {
		_, err = os.Stdout.Write(blob)
		return err
	}

	if err := os.WriteFile(args[0], blob, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Printf("Exported to %s\n", args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(blob, &ds); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := s.Import(ds); err != nil {
		return err
	}
	fmt.Printf("Imported %d transactions, %d budgets, %d pots\n",
		len(ds.Transactions), len(ds.Budgets), len(ds.Pots))
	return nil
}
