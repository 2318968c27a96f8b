package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	addName    string
	addGrams   float64
	addProtein float64
	addCarb    float64
	addFat     float64
	addKcal    int
	addPer100  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry to the day",
	Long: `Add a food entry. Calories derive from the macros unless --kcal is
given, which stores a manual override that is never recomputed.

With --per100 the macros are a per-100g basis scaled to --grams:
  mealtracker add --name Oats --per100 13,60,7 --grams 80`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Entry name")
	addCmd.Flags().Float64VarP(&addGrams, "grams", "g", 0, "Portion size in grams")
	addCmd.Flags().Float64VarP(&addProtein, "protein", "p", 0, "Protein grams")
	addCmd.Flags().Float64VarP(&addCarb, "carb", "c", 0, "Carbohydrate grams")
	addCmd.Flags().Float64VarP(&addFat, "fat", "f", 0, "Fat grams")
	addCmd.Flags().IntVarP(&addKcal, "kcal", "k", -1, "Manual kcal override")
	addCmd.Flags().StringVar(&addPer100, "per100", "", "Per-100g basis p,c,f[,kcal] scaled to --grams")
	rootCmd.AddCommand(addCmd)
}

// parsePer100 parses "p,c,f" or "p,c,f,kcal" into a scaling basis.
func parsePer100(s string) (model.Per100, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return model.Per100{}, fmt.Errorf("per100 wants p,c,f[,kcal], got %q", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.Per100{}, fmt.Errorf("per100 component %q: %w", p, err)
		}
		vals[i] = macro.Clamp(v)
	}
	basis := model.Per100{Protein: vals[0], Carb: vals[1], Fat: vals[2]}
	if len(vals) == 4 {
		basis.Kcal = vals[3]
	}
	return basis, nil
}

func runAdd(_ *cobra.Command, _ []string) error {
	var basis model.Per100
	entry := model.FoodEntry{
		Name:    addName,
		Grams:   addGrams,
		Protein: addProtein,
		Carb:    addCarb,
		Fat:     addFat,
	}

	if addPer100 != "" {
		// Direct macro flags would conflict with the basis; the basis wins
		// and the macros come from scaling.
		if addProtein != 0 || addCarb != 0 || addFat != 0 {
			return fmt.Errorf("--per100 and direct macro flags are mutually exclusive")
		}
		var err error
		basis, err = parsePer100(addPer100)
		if err != nil {
			return err
		}
		if addGrams <= 0 {
			return fmt.Errorf("--per100 needs --grams to scale to")
		}
		entry.Protein, entry.Carb, entry.Fat, entry.Kcal = macro.ScalePer100(basis, addGrams)
		entry.ManualKcal = basis.Kcal > 0
	} else if addKcal >= 0 {
		entry.Kcal = addKcal
		entry.ManualKcal = true
	}

	store := openStore()
	var added model.FoodEntry
	var date string
	err := store.Mutate(func(doc *model.Document) error {
		var rerr error
		date, rerr = resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		added = ledger.AddEntry(doc, date, ledger.ResolveKcal(entry))
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
