package cmd

import (
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	goalKcal       int
	goalProtein    float64
	goalCarb       float64
	goalFat        float64
	goalFromMacros bool
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show daily macro goals",
	RunE:  runGoalsShow,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change daily macro goals",
	Long: `Change one or more daily goals. The kcal goal is independent of the
macro goals; pass --from-macros to recompute it from protein, carbs and
fat instead of setting it directly.`,
	RunE: runGoalsSet,
}

func init() {
	goalsSetCmd.Flags().IntVarP(&goalKcal, "kcal", "k", -1, "Daily calorie goal")
	goalsSetCmd.Flags().Float64VarP(&goalProtein, "protein", "p", -1, "Daily protein goal in grams")
	goalsSetCmd.Flags().Float64VarP(&goalCarb, "carb", "c", -1, "Daily carbohydrate goal in grams")
	goalsSetCmd.Flags().Float64VarP(&goalFat, "fat", "f", -1, "Daily fat goal in grams")
	goalsSetCmd.Flags().BoolVar(&goalFromMacros, "from-macros", false, "Derive the kcal goal from the macro goals")
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}

func printGoals(g model.Goals) {
	fmt.Println(cli.RenderTitle("Daily Goals"))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Target"},
		Rows: [][]string{
			{"Calories", cli.FormatKcal(g.Kcal)},
			{"Protein", cli.FormatMacro(g.Protein)},
			{"Carbs", cli.FormatMacro(g.Carb)},
			{"Fat", cli.FormatMacro(g.Fat)},
		},
	}))
}

func runGoalsShow(_ *cobra.Command, _ []string) error {
	doc := openStore().LoadOrInit()
	printGoals(doc.Goals)
	return nil
}

func runGoalsSet(_ *cobra.Command, _ []string) error {
	store := openStore()
	var goals model.Goals
	err := store.Mutate(func(doc *model.Document) error {
		if goalProtein >= 0 {
			doc.Goals.Protein = goalProtein
		}
		if goalCarb >= 0 {
			doc.Goals.Carb = goalCarb
		}
		if goalFat >= 0 {
			doc.Goals.Fat = goalFat
		}
		if goalKcal >= 0 {
			doc.Goals.Kcal = goalKcal
		}
		if goalFromMacros {
			doc.Goals.Kcal = macro.RoundKcal(macro.KcalFromMacros(
				doc.Goals.Protein, doc.Goals.Carb, doc.Goals.Fat))
		}
		goals = doc.Goals
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		printGoals(goals)
	}
	return nil
}
