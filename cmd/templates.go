package cmd

import (
	"fmt"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	tplName    string
	tplGrams   float64
	tplProtein float64
	tplCarb    float64
	tplFat     float64
	tplUseGram float64
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"tpl"},
	Short:   "List food templates",
	RunE:    runTemplatesList,
}

var templatesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a per-100g food template",
	Long: `Save a reusable food with per-100g macros. Templates are applied with
"templates use", which scales them to an arbitrary portion size.`,
	RunE: runTemplatesAdd,
}

var templatesUseCmd = &cobra.Command{
	Use:   "use <name-or-id>",
	Short: "Add a day entry from a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesUse,
}

var templatesRemoveCmd = &cobra.Command{
	Use:     "remove <name-or-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a template",
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplatesRemove,
}

func init() {
	templatesAddCmd.Flags().StringVarP(&tplName, "name", "n", "", "Template name")
	templatesAddCmd.Flags().Float64VarP(&tplGrams, "grams", "g", 100, "Default portion size in grams")
	templatesAddCmd.Flags().Float64VarP(&tplProtein, "protein", "p", 0, "Protein per 100g")
	templatesAddCmd.Flags().Float64VarP(&tplCarb, "carb", "c", 0, "Carbohydrates per 100g")
	templatesAddCmd.Flags().Float64VarP(&tplFat, "fat", "f", 0, "Fat per 100g")
	templatesUseCmd.Flags().Float64VarP(&tplUseGram, "grams", "g", 0, "Portion size in grams (default: the template's)")
	templatesCmd.AddCommand(templatesAddCmd, templatesUseCmd, templatesRemoveCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	doc := openStore().LoadOrInit()
	fmt.Println(cli.RenderTitle("Templates"))
	if len(doc.Templates) == 0 {
		fmt.Println(cli.Warn("  No templates yet. Save one with `mealtracker templates add`."))
		return nil
	}

	rows := make([][]string, 0, len(doc.Templates))
	for _, t := range doc.Templates {
		kcal := macro.RoundKcal(macro.KcalFromMacros(t.Protein, t.Carb, t.Fat))
		rows = append(rows, []string{
			t.Name,
			cli.FormatGrams(t.BaseGrams),
			cli.FormatMacro(t.Protein),
			cli.FormatMacro(t.Carb),
			cli.FormatMacro(t.Fat),
			cli.FormatKcal(kcal),
			cli.ShortID(t.ID),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Portion", "P/100g", "C/100g", "F/100g", "kcal/100g", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runTemplatesAdd(_ *cobra.Command, _ []string) error {
	store := openStore()
	var saved model.Template
	err := store.Mutate(func(doc *model.Document) error {
		saved = ledger.AddTemplate(doc, model.Template{
			Name:      tplName,
			BaseGrams: tplGrams,
			Protein:   macro.Clamp(tplProtein),
			Carb:      macro.Clamp(tplCarb),
			Fat:       macro.Clamp(tplFat),
		})
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Saved template %q (%s default portion)\n",
			saved.Name, cli.FormatGrams(saved.BaseGrams))
	}
	return nil
}

func runTemplatesUse(_ *cobra.Command, args []string) error {
	store := openStore()
	var added model.FoodEntry
	var date string
	err := store.Mutate(func(doc *model.Document) error {
		var rerr error
		date, rerr = resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		tpl, ok := ledger.FindTemplate(doc, args[0])
		if !ok {
			return fmt.Errorf("no template matching %q: %w", args[0], ledger.ErrNotFound)
		}
		grams := tplUseGram
		if grams <= 0 {
			grams = tpl.BaseGrams
		}
		basis := ledger.TemplateBasis(tpl)
		e := model.FoodEntry{Name: tpl.Name, Grams: grams}
		e.Protein, e.Carb, e.Fat, e.Kcal = macro.ScalePer100(basis, grams)
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

func runTemplatesRemove(_ *cobra.Command, args []string) error {
	store := openStore()
	var removed model.Template
	err := store.Mutate(func(doc *model.Document) error {
		tpl, ok := ledger.FindTemplate(doc, args[0])
		if !ok {
			return fmt.Errorf("no template matching %q: %w", args[0], ledger.ErrNotFound)
		}
		removed = tpl
		ledger.RemoveTemplate(doc, tpl.ID)
		return nil
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("Removed template %q\n", removed.Name)
	}
	return nil
}
