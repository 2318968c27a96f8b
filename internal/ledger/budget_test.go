package ledger

import (
	"errors"
	"testing"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

func newDoc() *model.Document {
	doc := &model.Document{}
	ApplyDefaults(doc)
	return doc
}

func TestCommit_NotConfigured(t *testing.T) {
	doc := newDoc()

	_, err := Commit(doc, "2026-01-10", 2000)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if doc.Budget.BudgetLeft != 0 || len(doc.Budget.CommittedDays) != 0 {
		t.Error("failed commit must not mutate state")
	}
}

func TestCommit_CutScenario(t *testing.T) {
	doc := newDoc()
	Configure(doc, 5000, 2400, model.ModeCut)

	// Day 1: 400 under maintenance.
	delta, err := Commit(doc, "2026-01-10", 2000)
	if err != nil {
		t.Fatalf("day 1 commit: %v", err)
	}
	if delta != 400 {
		t.Errorf("day 1 delta = %v, want 400", delta)
	}
	if doc.Budget.BudgetLeft != 4600 {
		t.Errorf("budgetLeft = %v, want 4600", doc.Budget.BudgetLeft)
	}

	// Day 2: over maintenance earns nothing, no penalty.
	delta, err = Commit(doc, "2026-01-11", 2600)
	if err != nil {
		t.Fatalf("day 2 commit: %v", err)
	}
	if delta != 0 {
		t.Errorf("day 2 delta = %v, want 0", delta)
	}
	if doc.Budget.BudgetLeft != 4600 {
		t.Errorf("budgetLeft = %v, want 4600 (unchanged)", doc.Budget.BudgetLeft)
	}

	// Day 2 again: guarded, state untouched.
	_, err = Commit(doc, "2026-01-11", 2600)
	if !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("second commit err = %v, want ErrAlreadyCommitted", err)
	}
	if doc.Budget.BudgetLeft != 4600 {
		t.Errorf("budgetLeft = %v, want 4600 after guarded commit", doc.Budget.BudgetLeft)
	}
}

func TestCommit_NeverNegative(t *testing.T) {
	doc := newDoc()
	Configure(doc, 500, 2000, model.ModeCut)

	// Eating nothing earns the full maintenance as deficit; left clamps at 0.
	delta, err := Commit(doc, "2026-01-10", 0)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if delta != 2000 {
		t.Errorf("delta = %v, want 2000", delta)
	}
	if doc.Budget.BudgetLeft != 0 {
		t.Errorf("budgetLeft = %v, want 0 (clamped, not -1500)", doc.Budget.BudgetLeft)
	}
}

func TestCommit_BulkUnderMaintenance(t *testing.T) {
	doc := newDoc()
	Configure(doc, 9000, 3000, model.ModeBulk)

	delta, err := Commit(doc, "2026-01-10", 2000)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if delta != 0 {
		t.Errorf("bulk under-maintenance delta = %v, want 0", delta)
	}
	if doc.Budget.BudgetLeft != 9000 {
		t.Errorf("budgetLeft = %v, want 9000", doc.Budget.BudgetLeft)
	}
}

func TestCommit_BulkSurplus(t *testing.T) {
	doc := newDoc()
	Configure(doc, 9000, 3000, model.ModeBulk)

	delta, err := Commit(doc, "2026-01-10", 3500)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if delta != 500 {
		t.Errorf("delta = %v, want 500", delta)
	}
	if doc.Budget.BudgetLeft != 8500 {
		t.Errorf("budgetLeft = %v, want 8500", doc.Budget.BudgetLeft)
	}
}

func TestConfigure_ResetsProgressAndHistory(t *testing.T) {
	doc := newDoc()
	Configure(doc, 5000, 2400, model.ModeCut)
	if _, err := Commit(doc, "2026-01-10", 2000); err != nil {
		t.Fatal(err)
	}

	Configure(doc, 9000, 2500, model.ModeCut)
	if doc.Budget.BudgetStart != 9000 || doc.Budget.BudgetLeft != 9000 {
		t.Errorf("budget = %v/%v, want 9000/9000", doc.Budget.BudgetLeft, doc.Budget.BudgetStart)
	}
	if len(doc.Budget.CommittedDays) != 0 {
		t.Error("reconfigure must clear committed history")
	}

	// The cleared date can be committed again against the new budget.
	delta, err := Commit(doc, "2026-01-10", 2000)
	if err != nil {
		t.Fatalf("recommit after reconfigure: %v", err)
	}
	if delta != 500 {
		t.Errorf("delta = %v, want 500", delta)
	}
}

func TestSetMode_PreservesBudgetProgress(t *testing.T) {
	doc := newDoc()
	Configure(doc, 5000, 2400, model.ModeCut)
	if _, err := Commit(doc, "2026-01-10", 2000); err != nil {
		t.Fatal(err)
	}

	SetMode(doc, model.ModeBulk)

	if doc.Settings.Mode != model.ModeBulk {
		t.Errorf("mode = %s, want bulk", doc.Settings.Mode)
	}
	if doc.Budget.BudgetLeft != 4600 || doc.Budget.BudgetStart != 5000 {
		t.Error("mode switch must not touch budget counters")
	}
	if !doc.Budget.Committed("2026-01-10") {
		t.Error("mode switch must not touch committed history")
	}

	// Future commits use the bulk formula.
	delta, err := Commit(doc, "2026-01-11", 2600)
	if err != nil {
		t.Fatal(err)
	}
	if delta != 200 {
		t.Errorf("post-switch delta = %v, want 200 (surplus)", delta)
	}
}

func TestSetMode_RejectsUnknown(t *testing.T) {
	doc := newDoc()
	SetMode(doc, model.Mode("recomp"))
	if doc.Settings.Mode != model.ModeCut {
		t.Errorf("mode = %s, want cut preserved", doc.Settings.Mode)
	}
}

func TestCommitDay_SumsEntries(t *testing.T) {
	doc := newDoc()
	Configure(doc, 5000, 2400, model.ModeCut)
	AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{Name: "Oats", Protein: 13, Carb: 60, Fat: 7}))
	AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{Name: "Quark", Protein: 30, Carb: 10, Fat: 1}))

	// 13*4+60*4+7*9 = 355, 30*4+10*4+1*9 = 169 -> eaten 524
	delta, err := CommitDay(doc, "2026-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if delta != 2400-524 {
		t.Errorf("delta = %v, want %v", delta, 2400-524)
	}
}

func TestKgEquivalent(t *testing.T) {
	if got := model.KgEquivalent(4500); got != 0.5 {
		t.Errorf("KgEquivalent(4500) = %v, want 0.5", got)
	}
}
