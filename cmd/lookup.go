package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/config"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/food"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var (
	lookupBarcode bool
	lookupGrams   float64
	lookupAdd     bool
	lookupOffline bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query-or-barcode>",
	Short: "Look a food up in Open Food Facts",
	Long: `Look a product up in the Open Food Facts database. A plain argument
runs a name search; with --barcode the argument is an exact barcode.

Barcode hits are cached locally, so repeated scans and --offline work
without hitting the network. Combine --add and --grams to put the
product straight onto the day:

  mealtracker lookup --barcode 4311501479209 --add --grams 250`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVarP(&lookupBarcode, "barcode", "b", false, "Treat the argument as a barcode")
	lookupCmd.Flags().Float64VarP(&lookupGrams, "grams", "g", 0, "Portion size for --add, in grams")
	lookupCmd.Flags().BoolVar(&lookupAdd, "add", false, "Add the product to the day (needs --barcode)")
	lookupCmd.Flags().BoolVar(&lookupOffline, "offline", false, "Use only the local product cache")
	rootCmd.AddCommand(lookupCmd)
}

func openProductCache() (*food.Cache, error) {
	dir := filepath.Dir(openStore().Path())
	return food.OpenCache(filepath.Join(dir, "products.db"))
}

// fetchProduct resolves a barcode via the cache first, then the network,
// writing fresh hits back into the cache.
func fetchProduct(ctx context.Context, cache *food.Cache, code string, offline bool) (food.Product, error) {
	p, err := cache.Get(code)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, food.ErrNotFound) {
		return food.Product{}, err
	}
	if offline {
		return food.Product{}, fmt.Errorf("barcode %s not cached and --offline is set: %w", code, food.ErrNotFound)
	}

	p, err = food.NewClient().ByBarcode(ctx, code)
	if err != nil {
		return food.Product{}, err
	}
	if cerr := cache.Put(p); cerr != nil {
		fmt.Println(cli.Warn("  warning: could not cache product: " + cerr.Error()))
	}
	return p, nil
}

func printProduct(p food.Product) {
	name := p.Name
	if p.Brand != "" {
		name += " (" + p.Brand + ")"
	}
	fmt.Println(cli.RenderTitle(name))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Per 100g", "Value"},
		Rows: [][]string{
			{"Calories", cli.FormatKcal(macro.RoundKcal(p.Per100.Kcal))},
			{"Protein", cli.FormatMacro(p.Per100.Protein)},
			{"Carbs", cli.FormatMacro(p.Per100.Carb)},
			{"Fat", cli.FormatMacro(p.Per100.Fat)},
		},
	}))
	fmt.Printf("  Barcode: %s\n", p.Barcode)
}

func runLookup(_ *cobra.Command, args []string) error {
	offline := lookupOffline
	if cfg, err := config.Load(); err == nil && cfg.Lookup.Offline {
		offline = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !lookupBarcode {
		if lookupAdd {
			return fmt.Errorf("--add needs --barcode, search results are ambiguous")
		}
		if offline {
			return fmt.Errorf("name search needs the network, drop --offline")
		}
		results, err := food.NewClient().Search(ctx, args[0])
		if err != nil {
			return fmt.Errorf("search %q: %w", args[0], err)
		}
		if len(results) == 0 {
			fmt.Println(cli.Warn("  No products found."))
			return nil
		}
		rows := make([][]string, 0, len(results))
		for _, p := range results {
			rows = append(rows, []string{
				p.Name,
				p.Brand,
				cli.FormatKcal(macro.RoundKcal(p.Per100.Kcal)),
				cli.FormatMacro(p.Per100.Protein),
				cli.FormatMacro(p.Per100.Carb),
				cli.FormatMacro(p.Per100.Fat),
				p.Barcode,
			})
		}
		fmt.Println(cli.RenderTitle("Search Results"))
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Name", "Brand", "kcal/100g", "P", "C", "F", "Barcode"},
			Rows:    rows,
		}))
		return nil
	}

	code := strings.TrimSpace(args[0])
	cache, err := openProductCache()
	if err != nil {
		return fmt.Errorf("open product cache: %w", err)
	}
	defer func() { _ = cache.Close() }()

	p, err := fetchProduct(ctx, cache, code, offline)
	if err != nil {
		return fmt.Errorf("lookup barcode %s: %w", code, err)
	}

	if !lookupAdd {
		printProduct(p)
		return nil
	}

	if lookupGrams <= 0 {
		return fmt.Errorf("--add needs a positive --grams portion")
	}
	store := openStore()
	var added model.FoodEntry
	var date string
	err = store.Mutate(func(doc *model.Document) error {
		var rerr error
		date, rerr = resolveDate(doc)
		if rerr != nil {
			return rerr
		}
		e := model.FoodEntry{Name: p.Name, Grams: lookupGrams}
		e.Protein, e.Carb, e.Fat, e.Kcal = macro.ScalePer100(p.Per100, lookupGrams)
		e.ManualKcal = p.Per100.Kcal > 0
		added = ledger.AddEntry(doc, date, ledger.ResolveKcal(e))
		ledger.RememberRecent(doc, added, p.Per100)
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
