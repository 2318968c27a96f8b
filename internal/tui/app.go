// Package tui provides the interactive Bubble Tea dashboard for mealtracker.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/components"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DocLoadedMsg is sent when the ledger document has been read from disk.
type DocLoadedMsg struct {
	Doc *model.Document
}

// App is the root Bubble Tea model.
type App struct {
	store *ledger.Store
	doc   *model.Document
	date  string // day shown on the Today tab, YYYY-MM-DD

	loaded  bool
	saveErr error // last persist failure, shown in the header

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	today    todayState
	tpl      tplState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
}

type todayState struct {
	cursor int
}

type tplState struct {
	cursor int
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(store *ledger.Store, needSetup bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		store:     store,
		needSetup: needSetup,
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDocCmd(a.store),
		a.spinner.Tick,
	)
}

// loadDocCmd reads the ledger document in a background command.
func loadDocCmd(store *ledger.Store) tea.Cmd {
	return func() tea.Msg {
		return DocLoadedMsg{Doc: store.LoadOrInit()}
	}
}

// persist writes the document back to disk, remembering failures for the
// header instead of aborting the session.
func (a *App) persist() {
	a.saveErr = a.store.Save(a.doc)
}

func (a App) entries() []model.FoodEntry {
	if a.doc == nil {
		return nil
	}
	return a.doc.Entries(a.date)
}

func (a *App) clampCursors() {
	if n := len(a.entries()); a.today.cursor >= n {
		a.today.cursor = n - 1
	}
	if a.today.cursor < 0 {
		a.today.cursor = 0
	}
	if a.doc != nil {
		if n := len(a.doc.Templates); a.tpl.cursor >= n {
			a.tpl.cursor = n - 1
		}
	}
	if a.tpl.cursor < 0 {
		a.tpl.cursor = 0
	}
}

// shiftDate moves an ISO date by the given number of days.
func shiftDate(date string, days int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ledger.TodayISO()
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 0 && a.today.cursor > 0 {
				a.today.cursor--
			}
			if a.activeTab == 2 && a.tpl.cursor > 0 {
				a.tpl.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 0 && a.today.cursor < len(a.entries())-1 {
				a.today.cursor++
			}
			if a.activeTab == 2 && a.doc != nil && a.tpl.cursor < len(a.doc.Templates)-1 {
				a.tpl.cursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == 3 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == 0 {
			if next, cmd, handled := a.updateToday(key); handled {
				return next, cmd
			}
		}
		if a.activeTab == 2 {
			if next, cmd, handled := a.updateTemplates(key); handled {
				return next, cmd
			}
		}
		if a.activeTab == 1 && key == "m" {
			mode := model.ModeCut
			if a.doc.Settings.Mode == model.ModeCut {
				mode = model.ModeBulk
			}
			ledger.SetMode(a.doc, mode)
			a.persist()
			return a, nil
		}
		if a.activeTab == 3 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Reload from disk, picking up CLI edits made while the TUI runs
		if key == "r" {
			return a, loadDocCmd(a.store)
		}

		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DocLoadedMsg:
		a.doc = msg.Doc
		a.loaded = true
		if !ledger.ValidDate(a.doc.LastDate) {
			a.doc.LastDate = ledger.TodayISO()
		}
		a.date = a.doc.LastDate
		a.clampCursors()

		if a.needSetup {
			a.setupForm = newSetupForm(a.doc, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// updateToday handles Today-tab keybindings. The bool result reports
// whether the key was consumed.
func (a App) updateToday(key string) (tea.Model, tea.Cmd, bool) {
	entries := a.entries()

	switch key {
	case "j", "down":
		if a.today.cursor < len(entries)-1 {
			a.today.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.today.cursor > 0 {
			a.today.cursor--
		}
		return a, nil, true
	case "g":
		a.today.cursor = 0
		return a, nil, true
	case "G":
		a.today.cursor = len(entries) - 1
		if a.today.cursor < 0 {
			a.today.cursor = 0
		}
		return a, nil, true
	case "h":
		a.date = shiftDate(a.date, -1)
		a.doc.LastDate = a.date
		a.today.cursor = 0
		a.persist()
		return a, nil, true
	case "l":
		a.date = shiftDate(a.date, 1)
		a.doc.LastDate = a.date
		a.today.cursor = 0
		a.persist()
		return a, nil, true
	case "d":
		if len(entries) > 0 {
			ledger.RemoveEntry(a.doc, a.date, entries[a.today.cursor].ID)
			a.clampCursors()
			a.persist()
		}
		return a, nil, true
	case "c":
		if _, err := ledger.CommitDay(a.doc, a.date); err == nil {
			a.persist()
		}
		return a, nil, true
	}
	return a, nil, false
}

// updateTemplates handles Templates-tab keybindings.
func (a App) updateTemplates(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.tpl.cursor < len(a.doc.Templates)-1 {
			a.tpl.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.tpl.cursor > 0 {
			a.tpl.cursor--
		}
		return a, nil, true
	case "enter":
		if len(a.doc.Templates) > 0 {
			a.applyTemplate(a.doc.Templates[a.tpl.cursor])
			a.persist()
		}
		return a, nil, true
	case "d":
		if len(a.doc.Templates) > 0 {
			ledger.RemoveTemplate(a.doc, a.doc.Templates[a.tpl.cursor].ID)
			a.clampCursors()
			a.persist()
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  mealtracker needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ mealtracker"))
	b.WriteString(subtitleStyle.Render(" · Day Ledger"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Reading ledger..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"t b p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"h l", "Previous / Next day"},
		{"g G", "First / Last entry"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"c", "Commit the day"},
		{"d", "Delete entry / template"},
		{"Enter", "Apply template / Edit setting"},
		{"m", "Toggle cut / bulk (Budget tab)"},
		{"r", "Reload ledger from disk"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Entries are added with the CLI: mealtracker add"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar + date row
	dateStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red)

	dateRow := dimStyle.Render(" ") + dateStyle.Render(a.date)
	if a.doc.Budget.Committed(a.date) {
		dateRow += dimStyle.Render(" · committed")
	}
	if a.saveErr != nil {
		dateRow += warnStyle.Render("  save failed: " + a.saveErr.Error())
	}

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Width(w).Render(dateRow)

	statusBar := components.RenderStatusBar(w, a.date, a.doc.Budget.Committed(a.date))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderTodayTab(cw)
	case 1:
		content = a.renderBudgetTab(cw)
	case 2:
		content = a.renderTemplatesTab(cw)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
