package cmd

import (
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode [cut|bulk]",
	Short: "Show or switch the budget mode",
	Long: `Switch between cutting (earn by eating under maintenance) and bulking
(earn by eating over maintenance). Switching keeps the running budget and
the committed-day history; only future commits use the new direction.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func runMode(_ *cobra.Command, args []string) error {
	store := openStore()

	if len(args) == 0 {
		doc := store.LoadOrInit()
		fmt.Println(doc.Settings.Mode)
		return nil
	}

	mode := model.Mode(args[0])
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q, want cut or bulk", args[0])
	}
	err := store.Mutate(func(doc *model.Document) error {
		ledger.SetMode(doc, mode)
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Mode set to %s\n", mode)
	}
	return nil
}
