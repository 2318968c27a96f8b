package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/config"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// askFloat prompts for a number, keeping the current value on empty input.
func askFloat(reader *bufio.Reader, current float64) float64 {
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Println("     (keeping current value)")
		return current
	}
	return v
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()
	store := openStore()
	doc := store.LoadOrInit()

	fmt.Println()
	fmt.Println("  Welcome to mealtracker!")
	fmt.Println()

	// 1. Daily goals
	fmt.Println("  1. Daily goals (enter keeps the current value)")
	fmt.Printf("     Calories [%d]:\n", doc.Goals.Kcal)
	doc.Goals.Kcal = int(askFloat(reader, float64(doc.Goals.Kcal)))
	fmt.Printf("     Protein g [%.0f]:\n", doc.Goals.Protein)
	doc.Goals.Protein = askFloat(reader, doc.Goals.Protein)
	fmt.Printf("     Carbs g [%.0f]:\n", doc.Goals.Carb)
	doc.Goals.Carb = askFloat(reader, doc.Goals.Carb)
	fmt.Printf("     Fat g [%.0f]:\n", doc.Goals.Fat)
	doc.Goals.Fat = askFloat(reader, doc.Goals.Fat)
	fmt.Println()

	// 2. Budget mode
	fmt.Println("  2. Budget mode")
	fmt.Println("     (1) Cut, earn by eating under maintenance [default]")
	fmt.Println("     (2) Bulk, earn by eating over maintenance")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	mode := model.ModeCut
	if strings.TrimSpace(choice) == "2" {
		mode = model.ModeBulk
	}
	fmt.Println()

	// 3. Budget
	fmt.Println("  3. Calorie budget")
	fmt.Printf("     Maintenance kcal/day [%.0f]:\n", doc.Budget.Maintenance)
	maintenance := askFloat(reader, doc.Budget.Maintenance)
	fmt.Println("     Budget size in kg of body fat (0 skips budget setup):")
	kg := askFloat(reader, model.KgEquivalent(doc.Budget.BudgetStart))
	if kg > 0 {
		ledger.Configure(doc, kg*model.KcalPerKgFat, maintenance, mode)
	} else {
		doc.Budget.Maintenance = maintenance
		ledger.SetMode(doc, mode)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := store.Save(doc); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Ledger: %s\n", store.Path())
	fmt.Printf("  Config: %s\n", config.Path())
	fmt.Println("  Run `mealtracker setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
