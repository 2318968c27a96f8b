package tui

import (
	"fmt"
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/cli"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/ledger"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/components"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// applyTemplate scales a template to its default portion and adds the
// result to the active day.
func (a *App) applyTemplate(tpl model.Template) {
	basis := ledger.TemplateBasis(tpl)
	e := model.FoodEntry{Name: tpl.Name, Grams: tpl.BaseGrams}
	e.Protein, e.Carb, e.Fat, e.Kcal = macro.ScalePer100(basis, tpl.BaseGrams)
	added := ledger.AddEntry(a.doc, a.date, ledger.ResolveKcal(e))
	ledger.RememberRecent(a.doc, added, basis)
}

func (a App) renderTemplatesTab(cw int) string {
	t := theme.Active

	var b strings.Builder

	if len(a.doc.Templates) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No templates yet.\n\nSave one with: mealtracker templates add --name Oats --protein 13 --carb 60 --fat 7")
		b.WriteString(components.ContentCard("Templates", hint, cw))
	} else {
		inner := components.CardInnerWidth(cw)
		nameW := inner - 44
		if nameW < 10 {
			nameW = 10
		}

		rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

		var rows []string
		for i, tpl := range a.doc.Templates {
			kcal := macro.RoundKcal(macro.KcalFromMacros(tpl.Protein, tpl.Carb, tpl.Fat))
			line := fmt.Sprintf("%-*s %8s  P %-6s C %-6s F %-6s %10s",
				nameW, truncStr(tpl.Name, nameW),
				cli.FormatGrams(tpl.BaseGrams),
				cli.FormatGrams(tpl.Protein),
				cli.FormatGrams(tpl.Carb),
				cli.FormatGrams(tpl.Fat),
				cli.FormatKcal(kcal))
			if i == a.tpl.cursor {
				rows = append(rows, selStyle.Render("▸ "+line))
			} else {
				rows = append(rows, rowStyle.Render("  "+line))
			}
		}
		rows = append(rows, dimStyle.Render("  enter adds to today at the default portion · d deletes"))

		b.WriteString(components.ContentCard(
			fmt.Sprintf("Templates (%d)", len(a.doc.Templates)),
			strings.Join(rows, "\n"), cw))
	}
	b.WriteString("\n")

	// Recents below, read-only
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var rows []string
	shown := len(a.doc.Recents)
	if shown > 8 {
		shown = 8
	}
	for i := 0; i < shown; i++ {
		r := a.doc.Recents[i]
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %2d. %s, %s, %s",
			i+1, r.Name, cli.FormatGrams(r.Grams), cli.FormatKcal(r.Kcal))))
	}
	if shown == 0 {
		rows = append(rows, dimStyle.Render("  Recents fill up as you add entries."))
	} else {
		rows = append(rows, dimStyle.Render("  Re-add from the CLI with: mealtracker recents add <#>"))
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Recent Foods (%d)", len(a.doc.Recents)),
		strings.Join(rows, "\n"), cw))

	return b.String()
}
