package cmd

import (
	"fmt"
	"sort"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	budgetStart       float64
	budgetMaintenance float64
	budgetMode        string
	budgetKg          float64
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the calorie budget",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure the calorie budget",
	Long: `Configure the long-horizon calorie budget. This resets any running
budget: the remaining amount snaps back to the start value and the list
of committed days is cleared.

9,000 kcal correspond to one kilogram of body fat, so --kg 0.5 is the
same as --start 4500.`,
	RunE: runBudgetSet,
}

func init() {
	budgetSetCmd.Flags().Float64VarP(&budgetStart, "start", "s", 0, "Budget size in kcal")
	budgetSetCmd.Flags().Float64Var(&budgetKg, "kg", 0, "Budget size in kg of body fat (overrides --start)")
	budgetSetCmd.Flags().Float64VarP(&budgetMaintenance, "maintenance", "m", 0, "Maintenance calories per day")
	budgetSetCmd.Flags().StringVarP(&budgetMode, "mode", "M", "", "Budget mode: cut or bulk")
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	doc := openStore().LoadOrInit()
	b := doc.Budget

	title := "Cut Countdown"
	if doc.Settings.Mode == model.ModeBulk {
		title = "Bulk Counter"
	}
	fmt.Println(cli.RenderTitle(title))

	if b.BudgetStart <= 0 {
		fmt.Println(cli.Warn("  No budget configured. Run `mealtracker budget set` to start one."))
		return nil
	}

	spent := b.BudgetStart - b.BudgetLeft
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "kcal", "kg fat"},
		Rows: [][]string{
			{"Budget", cli.FormatKcal(int(b.BudgetStart)), cli.FormatKg(model.KgEquivalent(b.BudgetStart))},
			{"Progress", cli.FormatKcal(int(spent)), cli.FormatKg(model.KgEquivalent(spent))},
			{"Remaining", cli.FormatKcal(int(b.BudgetLeft)), cli.FormatKg(model.KgEquivalent(b.BudgetLeft))},
		},
	}))
	fmt.Printf("\n  Maintenance: %s/day, mode: %s\n",
		cli.FormatKcal(int(b.Maintenance)), doc.Settings.Mode)

	if len(b.CommittedDays) > 0 {
		days := make([]string, 0, len(b.CommittedDays))
		for d := range b.CommittedDays {
			days = append(days, d)
		}
		sort.Strings(days)
		fmt.Printf("  Committed days: %d (latest %s)\n", len(days), days[len(days)-1])
	}
	return nil
}

func runBudgetSet(_ *cobra.Command, _ []string) error {
	start := budgetStart
	if budgetKg > 0 {
		start = budgetKg * model.KcalPerKgFat
	}
	if start <= 0 {
		return fmt.Errorf("budget needs a positive size, pass --start or --kg")
	}
	if budgetMaintenance <= 0 {
		return fmt.Errorf("budget needs positive --maintenance calories")
	}
	mode := model.Mode(budgetMode)
	if budgetMode != "" && !mode.Valid() {
		return fmt.Errorf("unknown mode %q, want cut or bulk", budgetMode)
	}

	store := openStore()
	err := store.Mutate(func(doc *model.Document) error {
		ledger.Configure(doc, start, budgetMaintenance, mode)
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Budget configured: %s (%s), maintenance %s/day\n",
			cli.FormatKcal(int(start)),
			cli.FormatKg(model.KgEquivalent(start)),
			cli.FormatKcal(int(budgetMaintenance)))
	}
	return nil
}
