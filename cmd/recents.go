package cmd

import (
	"fmt"
	"strconv"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var recentGrams float64

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "List recently added foods",
	RunE:  runRecentsList,
}

var recentsAddCmd = &cobra.Command{
	Use:   "add <index>",
	Short: "Re-add a recent food to the day",
	Long: `Re-add a food from the recents list by its index, counted from 1 at
the newest. With --grams the food is rescaled from its per-100g basis
instead of repeating the original portion.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecentsAdd,
}

func init() {
	recentsAddCmd.Flags().Float64VarP(&recentGrams, "grams", "g", 0, "Portion size in grams (default: same as last time)")
	recentsCmd.AddCommand(recentsAddCmd)
	rootCmd.AddCommand(recentsCmd)
}

func runRecentsList(_ *cobra.Command, _ []string) error {
	doc := openStore().LoadOrInit()
	fmt.Println(cli.RenderTitle("Recent Foods"))
	if len(doc.Recents) == 0 {
		fmt.Println(cli.Warn("  Nothing here yet, recents fill up as you add entries."))
		return nil
	}

	rows := make([][]string, 0, len(doc.Recents))
	for i, r := range doc.Recents {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			cli.FormatGrams(r.Grams),
			cli.FormatMacro(r.Protein),
			cli.FormatMacro(r.Carb),
			cli.FormatMacro(r.Fat),
			cli.FormatKcal(r.Kcal),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Name", "Amount", "P", "C", "F", "kcal"},
		Rows:    rows,
	}))
	return nil
}

func runRecentsAdd(_ *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return fmt.Errorf("index must be a positive number, got %q", args[0])
	}

	store := openStore()
	var added model.FoodEntry
	var date string
	err = store.Mutate(func(doc *model.Document) error {
		if idx > len(doc.Recents) {
			return fmt.Errorf("recents has %d items, index %d: %w",
				len(doc.Recents), idx, ledger.ErrNotFound)
		}
		var rerr error
		date, rerr = resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		r := doc.Recents[idx-1]
		e := model.FoodEntry{
			Name:    r.Name,
			Grams:   r.Grams,
			Protein: r.Protein,
			Carb:    r.Carb,
			Fat:     r.Fat,
			Kcal:    r.Kcal,
		}
		basis := ledger.RecentBasis(r)
		if recentGrams > 0 {
			if basis.Zero() {
				return fmt.Errorf("%q has no per-100g basis to rescale from", r.Name)
			}
			e.Grams = recentGrams
			e.Protein, e.Carb, e.Fat, e.Kcal = macro.ScalePer100(basis, recentGrams)
			e.ManualKcal = basis.Kcal > 0
		} else {
			// Repeat the stored kcal exactly, even when it was a manual
			// override the macros would not reproduce.
			e.ManualKcal = true
		}
		added = ledger.AddEntry(doc, date, ledger.ResolveKcal(e))
		ledger.RememberRecent(doc, added, basis)
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Added %q to %s: %s, %s\n",
			added.Name, date, cli.FormatGrams(added.Grams), cli.FormatKcal(added.Kcal))
	}
	return nil
}
