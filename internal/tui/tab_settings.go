package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/config"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/components"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldKcal = iota
	settingsFieldProtein
	settingsFieldCarb
	settingsFieldFat
	settingsFieldMaintenance
	settingsFieldTheme
	settingsFieldOffline
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg, _ := config.Load()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldKcal:
		ti.Placeholder = "2400"
		ti.SetValue(strconv.Itoa(a.doc.Goals.Kcal))
	case settingsFieldProtein:
		ti.Placeholder = "150"
		ti.SetValue(fmt.Sprintf("%.0f", a.doc.Goals.Protein))
	case settingsFieldCarb:
		ti.Placeholder = "300"
		ti.SetValue(fmt.Sprintf("%.0f", a.doc.Goals.Carb))
	case settingsFieldFat:
		ti.Placeholder = "60"
		ti.SetValue(fmt.Sprintf("%.0f", a.doc.Goals.Fat))
	case settingsFieldMaintenance:
		ti.Placeholder = "2400"
		ti.SetValue(fmt.Sprintf("%.0f", a.doc.Budget.Maintenance))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldOffline:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.Lookup.Offline))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	a.settings.saveErr = nil
	val := strings.TrimSpace(a.settings.input.Value())

	parseNum := func() (float64, bool) {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil || v < 0 {
			a.settings.saveErr = fmt.Errorf("not a non-negative number: %q", val)
			return 0, false
		}
		return v, true
	}

	switch a.settings.cursor {
	case settingsFieldKcal:
		if v, ok := parseNum(); ok {
			a.doc.Goals.Kcal = int(v)
		}
	case settingsFieldProtein:
		if v, ok := parseNum(); ok {
			a.doc.Goals.Protein = v
		}
	case settingsFieldCarb:
		if v, ok := parseNum(); ok {
			a.doc.Goals.Carb = v
		}
	case settingsFieldFat:
		if v, ok := parseNum(); ok {
			a.doc.Goals.Fat = v
		}
	case settingsFieldMaintenance:
		if v, ok := parseNum(); ok {
			a.doc.Budget.Maintenance = v
		}
	case settingsFieldTheme:
		cfg, _ := config.Load()
		cfg.Appearance.Theme = val
		if err := config.Save(cfg); err != nil {
			a.settings.saveErr = err
			return
		}
		theme.SetActive(val)
		return
	case settingsFieldOffline:
		offline, err := strconv.ParseBool(val)
		if err != nil {
			a.settings.saveErr = fmt.Errorf("want true or false, got %q", val)
			return
		}
		cfg, _ := config.Load()
		cfg.Lookup.Offline = offline
		a.settings.saveErr = config.Save(cfg)
		return
	}

	if a.settings.saveErr == nil {
		a.persist()
		a.settings.saveErr = a.saveErr
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg, _ := config.Load()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)

	fields := []struct {
		label string
		value string
	}{
		{"Calorie goal", strconv.Itoa(a.doc.Goals.Kcal)},
		{"Protein goal (g)", fmt.Sprintf("%.0f", a.doc.Goals.Protein)},
		{"Carb goal (g)", fmt.Sprintf("%.0f", a.doc.Goals.Carb)},
		{"Fat goal (g)", fmt.Sprintf("%.0f", a.doc.Goals.Fat)},
		{"Maintenance (kcal/day)", fmt.Sprintf("%.0f", a.doc.Budget.Maintenance)},
		{"Theme", cfg.Appearance.Theme},
		{"Offline lookup", strconv.FormatBool(cfg.Lookup.Offline)},
	}

	var rows []string
	for i, f := range fields {
		if i == a.settings.cursor && a.settings.editing {
			rows = append(rows, selStyle.Render("▸ "+f.label+": ")+a.settings.input.View())
			continue
		}
		line := labelStyle.Render(f.label+": ") + valueStyle.Render(f.value)
		if i == a.settings.cursor {
			rows = append(rows, selStyle.Render("▸ ")+line)
		} else {
			rows = append(rows, "  "+line)
		}
	}

	rows = append(rows, "")
	switch {
	case a.settings.saveErr != nil:
		rows = append(rows, redStyle.Render("  "+a.settings.saveErr.Error()))
	case a.settings.saved:
		rows = append(rows, greenStyle.Render("  Saved."))
	default:
		rows = append(rows, dimStyle.Render("  enter edits · esc cancels"))
	}
	rows = append(rows, dimStyle.Render("  Config: "+config.Path()))

	return components.ContentCard("Settings", strings.Join(rows, "\n"), cw)
}
