// Package cmd implements the finboard CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finboard/internal/config"
	"finboard/internal/log"
	"finboard/internal/model"
	"finboard/internal/query"
	"finboard/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagMonth   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "finboard",
	Short: "Personal finance dashboard",
	Long:  "Track your balance, transactions, budgets, savings pots, and recurring bills from the terminal.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Reference month as YYYY-MM (default: per month_policy)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostic output")
}

// cliLogger returns the logger commands share, honoring --quiet.
func cliLogger() *log.Logger {
	if flagQuiet {
		return log.Quiet("finboard")
	}
	return log.Default("finboard")
}

// dataDir resolves the data directory: flag, then config, then XDG default.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return config.DataDir()
}

// openStore is the shared data path used by all commands. The returned
// cleanup closes the snapshot database.
func openStore() (*store.Store, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, err
	}

	kv, err := store.OpenKV(filepath.Join(dataDir(cfg), "finboard.db"))
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("opening data store: %w", err)
	}

	s := store.Open(kv, cliLogger().WithComponent("store"))
	return s, cfg, func() { _ = kv.Close() }, nil
}

// referenceMonth resolves the month budgets and bills are computed against:
// the --month override if given, otherwise per the configured policy (the
// newest data month, or the real current month).
func referenceMonth(cfg config.Config, ds model.Dataset) (time.Month, int, error) {
	if flagMonth != "" {
		parsed, err := time.ParseInLocation("2006-01", flagMonth, time.Local)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --month %q, want YYYY-MM", flagMonth)
		}
		return parsed.Month(), parsed.Year(), nil
	}
	if cfg.General.MonthPolicy == config.MonthPolicyNow {
		now := time.Now().Local()
		return now.Month(), now.Year(), nil
	}
	month, year := query.LatestMonth(ds)
	return month, year, nil
}

// referenceDate resolves the date bill statuses are classified against,
// consistent with referenceMonth.
func referenceDate(cfg config.Config, ds model.Dataset) time.Time {
	if flagMonth != "" {
		if parsed, err := time.ParseInLocation("2006-01", flagMonth, time.Local); err == nil {
			// End of the requested month: everything in it counts as paid.
			return parsed.AddDate(0, 1, 0).Add(-time.Second)
		}
	}
	if cfg.General.MonthPolicy == config.MonthPolicyNow {
		return time.Now().Local()
	}
	return query.ReferenceDate(ds)
}
