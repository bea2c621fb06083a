package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"finboard/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to finboard!")
	fmt.Println()

	// 1. Results per page
	fmt.Println("  1. Transactions per page")
	fmt.Printf("     Current: %d\n", cfg.General.PageSize)
	fmt.Print("     > ")
	sizeInput, _ := reader.ReadString('\n')
	sizeInput = strings.TrimSpace(sizeInput)
	if sizeInput != "" {
		if n, err := strconv.Atoi(sizeInput); err == nil && n > 0 {
			cfg.General.PageSize = n
		}
	}
	fmt.Println()

	// 2. Reference month policy
	fmt.Println("  2. Reference month for budgets and bills")
	fmt.Println("     (1) Latest month with data [default]")
	fmt.Println("     (2) Current calendar month")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.General.MonthPolicy = config.MonthPolicyNow
	default:
		cfg.General.MonthPolicy = config.MonthPolicyLatest
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `finboard setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
