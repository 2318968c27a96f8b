package tui

import (
	"fmt"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/components"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	entries := a.entries()
	sum := ledger.DaySum(a.doc, a.date)
	goals := a.doc.Goals

	var b strings.Builder

	// Summary cards
	widths := components.LayoutRow(cw, 4)
	cards := []string{
		components.MetricCard("Calories", cli.FormatKcal(sum.Kcal),
			"of "+cli.FormatKcal(goals.Kcal), widths[0]),
		components.MetricCard("Protein", cli.FormatMacro(sum.Protein),
			"of "+cli.FormatMacro(goals.Protein), widths[1]),
		components.MetricCard("Carbs", cli.FormatMacro(sum.Carb),
			"of "+cli.FormatMacro(goals.Carb), widths[2]),
		components.MetricCard("Fat", cli.FormatMacro(sum.Fat),
			"of "+cli.FormatMacro(goals.Fat), widths[3]),
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	// Goal bars
	barW := cw - 40
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}
	bars := strings.Join([]string{
		components.GoalBar("Calories", macro.Progress(float64(sum.Kcal), float64(goals.Kcal)),
			fmt.Sprintf("%s / %s", cli.FormatKcal(sum.Kcal), cli.FormatKcal(goals.Kcal)), 8, barW),
		components.GoalBar("Protein", macro.Progress(sum.Protein, goals.Protein),
			fmt.Sprintf("%s / %s", cli.FormatMacro(sum.Protein), cli.FormatMacro(goals.Protein)), 8, barW),
		components.GoalBar("Carbs", macro.Progress(sum.Carb, goals.Carb),
			fmt.Sprintf("%s / %s", cli.FormatMacro(sum.Carb), cli.FormatMacro(goals.Carb)), 8, barW),
		components.GoalBar("Fat", macro.Progress(sum.Fat, goals.Fat),
			fmt.Sprintf("%s / %s", cli.FormatMacro(sum.Fat), cli.FormatMacro(goals.Fat)), 8, barW),
	}, "\n")
	b.WriteString(components.ContentCard("Goals", bars, cw))
	b.WriteString("\n")

	// Entry list
	if len(entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No entries yet. Add one with: mealtracker add --name ... --grams ...")
		b.WriteString(components.ContentCard("Entries", empty, cw))
		return b.String()
	}

	inner := components.CardInnerWidth(cw)
	nameW := inner - 34
	if nameW < 10 {
		nameW = 10
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var rows []string
	for i, e := range entries {
		kcal := cli.FormatKcal(e.Kcal)
		if e.ManualKcal {
			kcal += "*"
		}
		line := fmt.Sprintf("%-*s %8s %10s %11s",
			nameW, truncStr(e.Name, nameW),
			cli.FormatGrams(e.Grams),
			fmt.Sprintf("P %s", cli.FormatMacro(e.Protein)),
			kcal)
		if i == a.today.cursor {
			rows = append(rows, selStyle.Render("▸ "+line))
		} else {
			rows = append(rows, rowStyle.Render("  "+line))
		}
	}
	rows = append(rows, mutedStyle.Render("  d delete · c commit · h/l change day"))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Entries (%d)", len(entries)),
		strings.Join(rows, "\n"), cw))

	return b.String()
}
