package tui

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos++ // separator
			}
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Today"),
		len("Budget"),
		len("Templates"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		if tabIdx == 3 {
			w += 3 // inactive Settings appends "[x]"
		} else {
			w += 2 // brackets around the shortcut letter
		}
	}
	return w
}

func TestShiftDate(t *testing.T) {
	if got := shiftDate("2026-03-01", -1); got != "2026-02-28" {
		t.Errorf("shiftDate back across month = %s, want 2026-02-28", got)
	}
	if got := shiftDate("2026-12-31", 1); got != "2027-01-01" {
		t.Errorf("shiftDate across year = %s, want 2027-01-01", got)
	}
}
