package components

import (
	"strings"
	"testing"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 3},
		{100, 4},
		{7, 3},
		{1, 1},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestTabVisualWidths(t *testing.T) {
	for _, tab := range Tabs {
		activeW := TabVisualWidth(tab, true)
		if want := len(tab.Name) + 2; activeW != want {
			t.Errorf("active %q width = %d, want %d", tab.Name, activeW, want)
		}

		inactiveW := TabVisualWidth(tab, false)
		want := len(tab.Name) + 4
		if tab.KeyPos < 0 {
			want = len(tab.Name) + 5
		}
		if inactiveW != want {
			t.Errorf("inactive %q width = %d, want %d", tab.Name, inactiveW, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('b'); got != 1 {
		t.Errorf("TabIdxByKey('b') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
