package cmd

import (
	"errors"
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit the day against the budget",
	Long: `Close out the selected day: its calorie total is compared against
maintenance and the earned difference is deducted from the budget. Each
day can be committed once; reconfiguring the budget clears the history.`,
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

func runCommit(_ *cobra.Command, _ []string) error {
	store := openStore()
	var (
		date  string
		delta float64
		left  float64
		eaten int
	)
	err := store.Mutate(func(doc *model.Document) error {
		var rerr error
		date, rerr = resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		eaten = ledger.DaySum(doc, date).Kcal
		delta, rerr = ledger.CommitDay(doc, date)
		if rerr != nil {
			return rerr
		}
		left = doc.Budget.BudgetLeft
		return nil
	})
	switch {
	case errors.Is(err, ledger.ErrAlreadyCommitted):
		return fmt.Errorf("%s is already committed", date)
	case errors.Is(err, ledger.ErrNotConfigured):
		return fmt.Errorf("no budget configured, run `mealtracker budget set` first")
	case err != nil:
		return err
	}

	if !flagQuiet {
		fmt.Printf("Committed %s: %s eaten, %s earned, %s (%s) left\n",
			date,
			cli.FormatKcal(eaten),
			cli.FormatKcal(int(delta)),
			cli.FormatKcal(int(left)),
			cli.FormatKg(model.KgEquivalent(left)))
	}
	return nil
}
