package cmd

import (
	"fmt"
	"os"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/config"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDate    string
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "mealtracker",
	Short: "Personal nutrition tracker",
	Long:  "Track food entries against daily goals and a long-horizon cut/bulk calorie budget.",
	RunE:  runDay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDate, "date", "D", "", "Day to operate on (YYYY-MM-DD, default: last viewed)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
}

// openStore resolves the data directory from flag or config.
func openStore() *ledger.Store {
	dir := flagDataDir
	if dir == "" {
		if cfg, err := config.Load(); err == nil && cfg.General.DataDir != "" {
			dir = cfg.General.DataDir
		}
	}
	return ledger.NewStore(dir)
}

// resolveDate applies the --date flag to the document's last-viewed date
// and returns the date every command should operate on.
func resolveDate(doc *model.Document) (string, error) {
	if flagDate != "" {
		if !ledger.ValidDate(flagDate) {
			return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagDate)
		}
		doc.LastDate = flagDate
	}
	return doc.LastDate, nil
}

// budgetLine summarizes the budget state for the footer of day views.
func budgetLine(doc *model.Document) string {
	b := doc.Budget
	label := "Cut countdown"
	if doc.Settings.Mode == model.ModeBulk {
		label = "Bulk counter"
	}
	if b.BudgetStart <= 0 {
		return fmt.Sprintf("  %s: not configured (run `mealtracker budget set`)", label)
	}
	return fmt.Sprintf("  %s: %s of %s left (%s / %s)",
		label,
		cli.FormatKg(model.KgEquivalent(b.BudgetLeft)),
		cli.FormatKg(model.KgEquivalent(b.BudgetStart)),
		cli.FormatKcal(int(b.BudgetLeft)),
		cli.FormatKcal(int(b.BudgetStart)),
	)
}
