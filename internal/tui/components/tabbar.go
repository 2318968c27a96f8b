// Package components provides reusable TUI widgets for the mealtracker dashboard.
package components

import (
	"strings"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Today", Key: 't', KeyPos: 0},
	{Name: "Budget", Key: 'b', KeyPos: 0},
	{Name: "Templates", Key: 'p', KeyPos: 3},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// renderTab renders one tab cell, one leading and one trailing space of
// padding included. Hit testing relies on this being the only place tab
// width is decided.
func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		style := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		return " " + style.Render(tab.Name) + " "
	}

	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var body string
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		body = inactiveStyle.Render(tab.Name[:tab.KeyPos]) +
			dimStyle.Render("[") + keyStyle.Render(string(tab.Name[tab.KeyPos])) + dimStyle.Render("]") +
			inactiveStyle.Render(tab.Name[tab.KeyPos+1:])
	} else {
		body = inactiveStyle.Render(tab.Name) +
			dimStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimStyle.Render("]")
	}
	return " " + body + " "
}

// TabVisualWidth returns the rendered column width of a tab cell.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index. Tabs are
// separated by a single dim column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}

	sep := lipgloss.NewStyle().Foreground(t.TextDim).Render("│")
	bar := strings.Join(parts, sep)

	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
