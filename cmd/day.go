package cmd

import (
	"fmt"
	"time"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the day's entries, sums, and goal progress",
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(_ *cobra.Command, _ []string) error {
	store := openStore()

	var date string
	var doc *model.Document
	err := store.Mutate(func(d *model.Document) error {
		var rerr error
		date, rerr = resolveDate(d)
		doc = d
		return rerr
	})
	if err != nil {
		return err
	}

	entries := doc.Entries(date)
	sums := ledger.DaySum(doc, date)

	fmt.Println()
	weekday := ""
	if t, perr := time.Parse("2006-01-02", date); perr == nil {
		weekday = cli.FormatDayOfWeek(int(t.Weekday())) + " "
	}
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s%s", weekday, date)))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No entries yet. Add one with `mealtracker add`.")
	} else {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			kcalCell := cli.FormatNumber(int64(e.Kcal))
			if e.ManualKcal {
				kcalCell += "*"
			}
			rows = append(rows, []string{
				e.Name,
				cli.FormatGrams(e.Grams),
				cli.FormatMacro(e.Protein),
				cli.FormatMacro(e.Carb),
				cli.FormatMacro(e.Fat),
				kcalCell,
				cli.ShortID(e.ID),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Name", "Amount", "P", "C", "F", "kcal", "ID"},
			Rows:    rows,
		}))
	}

	fmt.Println()
	barW := 24
	fmt.Println(cli.RenderGoalBar("kcal",
		macro.Progress(float64(sums.Kcal), float64(doc.Goals.Kcal)),
		cli.FormatNumber(int64(sums.Kcal)), cli.FormatNumber(int64(doc.Goals.Kcal)), barW))
	fmt.Println(cli.RenderGoalBar("protein",
		macro.Progress(sums.Protein, doc.Goals.Protein),
		cli.FormatMacro(sums.Protein), cli.FormatMacro(doc.Goals.Protein), barW))
	fmt.Println(cli.RenderGoalBar("carbs",
		macro.Progress(sums.Carb, doc.Goals.Carb),
		cli.FormatMacro(sums.Carb), cli.FormatMacro(doc.Goals.Carb), barW))
	fmt.Println(cli.RenderGoalBar("fat",
		macro.Progress(sums.Fat, doc.Goals.Fat),
		cli.FormatMacro(sums.Fat), cli.FormatMacro(doc.Goals.Fat), barW))

	fmt.Println()
	fmt.Println(budgetLine(doc))
	if doc.Budget.Committed(date) {
		fmt.Println("  This day is already committed.")
	}
	fmt.Println()

	return nil
}
