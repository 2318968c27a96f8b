package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/components"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// intakeHistory returns kcal totals for the last n days ending at the
// active date, oldest first.
func (a App) intakeHistory(n int) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		date := shiftDate(a.date, i-n+1)
		values[i] = float64(ledger.DaySum(a.doc, date).Kcal)
	}
	return values
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	b := a.doc.Budget
	mode := a.doc.Settings.Mode

	title := "Cut Countdown"
	if mode == model.ModeBulk {
		title = "Bulk Counter"
	}

	var out strings.Builder

	if b.BudgetStart <= 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No budget configured.\n\nStart one with: mealtracker budget set --kg 0.5 --maintenance 2400")
		out.WriteString(components.ContentCard(title, hint, cw))
		return out.String()
	}

	spent := b.BudgetStart - b.BudgetLeft
	widths := components.LayoutRow(cw, 3)
	cards := []string{
		components.MetricCard("Budget", cli.FormatKcal(int(b.BudgetStart)),
			cli.FormatKg(model.KgEquivalent(b.BudgetStart))+" of fat", widths[0]),
		components.MetricCard("Progress", cli.FormatKcal(int(spent)),
			cli.FormatKg(model.KgEquivalent(spent)), widths[1]),
		components.MetricCard("Remaining", cli.FormatKcal(int(b.BudgetLeft)),
			cli.FormatKg(model.KgEquivalent(b.BudgetLeft)), widths[2]),
	}
	out.WriteString(components.CardRow(cards))
	out.WriteString("\n")

	// Progress bar across the whole budget
	pct := 0.0
	if b.BudgetStart > 0 {
		pct = spent / b.BudgetStart
	}
	barW := cw - 30
	if barW < 10 {
		barW = 10
	}
	bar := components.GoalBar(string(mode), pct,
		fmt.Sprintf("maintenance %s/day", cli.FormatKcal(int(b.Maintenance))), 6, barW)
	out.WriteString(components.ContentCard(title, bar, cw))
	out.WriteString("\n")

	// Intake sparkline for the last two weeks
	spark := components.Sparkline(a.intakeHistory(14), t.Blue)
	sparkLabel := lipgloss.NewStyle().Foreground(t.TextDim).Render("kcal per day, last 14 days")
	out.WriteString(components.ContentCard("Intake", spark+"\n"+sparkLabel, cw))
	out.WriteString("\n")

	// Committed-day history, newest first
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	days := make([]string, 0, len(b.CommittedDays))
	for d := range b.CommittedDays {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	var rows []string
	shown := len(days)
	if shown > 10 {
		shown = 10
	}
	for _, d := range days[:shown] {
		rows = append(rows, mutedStyle.Render("  "+d+"  "+cli.FormatKcal(ledger.DaySum(a.doc, d).Kcal)))
	}
	if len(days) == 0 {
		rows = append(rows, dimStyle.Render("  No days committed yet. Press c on the Today tab."))
	} else if len(days) > shown {
		rows = append(rows, dimStyle.Render(fmt.Sprintf("  … and %d more", len(days)-shown)))
	}
	rows = append(rows, dimStyle.Render("  m toggles cut/bulk"))

	out.WriteString(components.ContentCard(
		fmt.Sprintf("Committed Days (%d)", len(days)),
		strings.Join(rows, "\n"), cw))

	return out.String()
}
