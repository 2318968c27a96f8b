package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/config"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw first-run form inputs.
type setupValues struct {
	kcal    string
	protein string
	carb    string
	fat     string

	mode        string
	maintenance string
	budgetKg    string

	themeName string
}

func numberOrEmpty(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

// newSetupForm builds the first-run wizard, prefilled from the current
// document so re-running it edits instead of resetting.
func newSetupForm(doc *model.Document, vals *setupValues) *huh.Form {
	vals.kcal = strconv.Itoa(doc.Goals.Kcal)
	vals.protein = fmt.Sprintf("%.0f", doc.Goals.Protein)
	vals.carb = fmt.Sprintf("%.0f", doc.Goals.Carb)
	vals.fat = fmt.Sprintf("%.0f", doc.Goals.Fat)
	vals.mode = string(doc.Settings.Mode)
	if vals.mode == "" {
		vals.mode = string(model.ModeCut)
	}
	vals.maintenance = fmt.Sprintf("%.0f", doc.Budget.Maintenance)
	vals.themeName = "flexoki-dark"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to mealtracker!").
				Description("A few questions and you're tracking."),
			huh.NewInput().
				Title("Daily calorie goal").
				Value(&vals.kcal).
				Validate(numberOrEmpty),
			huh.NewInput().
				Title("Daily protein goal (g)").
				Value(&vals.protein).
				Validate(numberOrEmpty),
			huh.NewInput().
				Title("Daily carb goal (g)").
				Value(&vals.carb).
				Validate(numberOrEmpty),
			huh.NewInput().
				Title("Daily fat goal (g)").
				Value(&vals.fat).
				Validate(numberOrEmpty),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Budget mode").
				Options(
					huh.NewOption("Cut, earn by eating under maintenance", string(model.ModeCut)),
					huh.NewOption("Bulk, earn by eating over maintenance", string(model.ModeBulk)),
				).
				Value(&vals.mode),
			huh.NewInput().
				Title("Maintenance calories per day").
				Value(&vals.maintenance).
				Validate(numberOrEmpty),
			huh.NewInput().
				Title("Budget size in kg of body fat").
				Description("Leave empty to skip budget setup.").
				Value(&vals.budgetKg).
				Validate(numberOrEmpty),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&vals.themeName),
		),
	)
}

func parseOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

// saveSetup applies the completed form to the ledger and config.
func (a *App) saveSetup() {
	vals := a.setupVals

	a.doc.Goals.Kcal = int(parseOr(vals.kcal, float64(a.doc.Goals.Kcal)))
	a.doc.Goals.Protein = parseOr(vals.protein, a.doc.Goals.Protein)
	a.doc.Goals.Carb = parseOr(vals.carb, a.doc.Goals.Carb)
	a.doc.Goals.Fat = parseOr(vals.fat, a.doc.Goals.Fat)

	mode := model.Mode(vals.mode)
	maintenance := parseOr(vals.maintenance, a.doc.Budget.Maintenance)
	if kg := parseOr(vals.budgetKg, 0); kg > 0 {
		ledger.Configure(a.doc, kg*model.KcalPerKgFat, maintenance, mode)
	} else {
		a.doc.Budget.Maintenance = maintenance
		ledger.SetMode(a.doc, mode)
	}

	a.persist()

	cfg, _ := config.Load()
	cfg.Appearance.Theme = vals.themeName
	// Writing the config also marks first-run setup as done.
	_ = config.Save(cfg)
	theme.SetActive(cfg.Appearance.Theme)
}
