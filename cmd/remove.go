package cmd

import (
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a food entry from the day",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	store := openStore()
	var removed model.FoodEntry
	err := store.Mutate(func(doc *model.Document) error {
		date, rerr := resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		e, rerr := matchEntry(doc, date, args[0])
		if rerr != nil {
			return rerr
		}
		removed = e
		ledger.RemoveEntry(doc, date, e.ID)
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Removed %q\n", removed.Name)
	}
	return nil
}
