package ledger

import "github.com/schmidtrico91/rico-mealtracker-main/internal/model"

// Configure rescopes the whole budget: start and left are reset to the
// new start value and the committed-day history is cleared. Always
// allowed: reconfiguring mid-budget silently discards prior progress;
// asking for confirmation is a presentation concern.
func Configure(doc *model.Document, startKcal, maintenanceKcal float64, mode model.Mode) {
	if startKcal < 0 {
		startKcal = 0
	}
	if maintenanceKcal < 0 {
		maintenanceKcal = 0
	}
	doc.Budget.BudgetStart = startKcal
	doc.Budget.BudgetLeft = startKcal
	doc.Budget.Maintenance = maintenanceKcal
	doc.Budget.CommittedDays = map[string]bool{}
	if mode.Valid() {
		doc.Settings.Mode = mode
	}
}

// SetMode switches between cut and bulk. A pure settings change: budget
// progress, maintenance, and committed history all survive, only the
// delta formula for future commits changes. Pivoting strategy mid-budget
// is intentional.
func SetMode(doc *model.Document, mode model.Mode) {
	if mode.Valid() {
		doc.Settings.Mode = mode
	}
}

// Delta computes the energy balance a commit would earn for the given
// eaten total: deficit against maintenance in cut mode, surplus over it
// in bulk mode. A day on the wrong side of maintenance earns zero, never
// a penalty.
func Delta(mode model.Mode, maintenanceKcal, eatenKcal float64) float64 {
	var d float64
	if mode == model.ModeBulk {
		d = eatenKcal - maintenanceKcal
	} else {
		d = maintenanceKcal - eatenKcal
	}
	if d < 0 {
		return 0
	}
	return d
}

// Commit irreversibly folds one day's energy balance into the running
// budget, at most once per date. Returns the committed delta in kcal.
// Fails with ErrAlreadyCommitted for a repeated date and ErrNotConfigured
// when no budget was ever set; neither failure mutates state. BudgetLeft
// is clamped at zero, so commits only ever decrease it.
func Commit(doc *model.Document, date string, eatenKcal float64) (float64, error) {
	if doc.Budget.Committed(date) {
		return 0, ErrAlreadyCommitted
	}
	if doc.Budget.BudgetStart <= 0 {
		return 0, ErrNotConfigured
	}

	delta := Delta(doc.Settings.Mode, doc.Budget.Maintenance, eatenKcal)

	left := doc.Budget.BudgetLeft - delta
	if left < 0 {
		left = 0
	}
	doc.Budget.BudgetLeft = left
	doc.Budget.CommittedDays[date] = true

	return delta, nil
}

// CommitDay sums the date's entries and commits the result.
func CommitDay(doc *model.Document, date string) (float64, error) {
	sum := DaySum(doc, date)
	return Commit(doc, date, float64(sum.Kcal))
}
