package cmd

import (
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	editName    string
	editGrams   float64
	editProtein float64
	editCarb    float64
	editFat     float64
	editKcal    int
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Edit an existing food entry",
	Long: `Edit a food entry in place. Only the flags you pass change; the rest
of the entry stays as it was. Entry IDs are shown in the day view and may
be abbreviated to a unique prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New entry name")
	editCmd.Flags().Float64VarP(&editGrams, "grams", "g", -1, "New portion size in grams")
	editCmd.Flags().Float64VarP(&editProtein, "protein", "p", -1, "New protein grams")
	editCmd.Flags().Float64VarP(&editCarb, "carb", "c", -1, "New carbohydrate grams")
	editCmd.Flags().Float64VarP(&editFat, "fat", "f", -1, "New fat grams")
	editCmd.Flags().IntVarP(&editKcal, "kcal", "k", -1, "Manual kcal override")
	rootCmd.AddCommand(editCmd)
}

// matchEntry finds the entry whose ID starts with ref on the given date.
func matchEntry(doc *model.Document, date, ref string) (model.FoodEntry, error) {
	var found model.FoodEntry
	matches := 0
	for _, e := range doc.Entries(date) {
		if len(ref) > 0 && len(ref) <= len(e.ID) && e.ID[:len(ref)] == ref {
			found = e
			matches++
		}
	}
	switch matches {
	case 0:
		return model.FoodEntry{}, fmt.Errorf("no entry matching %q on %s: %w", ref, date, ledger.ErrNotFound)
	case 1:
		return found, nil
	default:
		return model.FoodEntry{}, fmt.Errorf("id %q matches %d entries, use more characters", ref, matches)
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	store := openStore()
	var updated model.FoodEntry
	err := store.Mutate(func(doc *model.Document) error {
		date, rerr := resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		e, rerr := matchEntry(doc, date, args[0])
		if rerr != nil {
			return rerr
		}
		if cmd.Flags().Changed("name") {
			e.Name = editName
		}
		if editGrams >= 0 {
			e.Grams = editGrams
		}
		if editProtein >= 0 {
			e.Protein = editProtein
		}
		if editCarb >= 0 {
			e.Carb = editCarb
		}
		if editFat >= 0 {
			e.Fat = editFat
		}
		if editKcal >= 0 {
			e.Kcal = editKcal
			e.ManualKcal = true
		} else if editProtein >= 0 || editCarb >= 0 || editFat >= 0 {
			// Touching a macro drops any stale manual override.
			e.ManualKcal = false
		}
		updated = ledger.ResolveKcal(e)
		return ledger.UpdateEntry(doc, date, e.ID, updated)
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Updated %q: %s\n", updated.Name, cli.FormatKcal(updated.Kcal))
	}
	return nil
}
