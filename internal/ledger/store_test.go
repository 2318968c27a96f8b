package ledger

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

func TestLoadOrInit_MissingFile(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := s.LoadOrInit()

	if doc.Goals != model.DefaultGoals() {
		t.Errorf("Goals = %+v, want defaults", doc.Goals)
	}
	if doc.Settings.Mode != model.ModeCut {
		t.Errorf("Mode = %s, want cut", doc.Settings.Mode)
	}
	if !ValidDate(doc.LastDate) {
		t.Errorf("LastDate = %q, want a valid date", doc.LastDate)
	}
	if doc.Days == nil || doc.Templates == nil || doc.Recents == nil {
		t.Error("collections must be initialized, never nil")
	}
}

func TestLoadOrInit_CorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc := s.LoadOrInit()
	if doc.Goals != model.DefaultGoals() {
		t.Error("corrupt file must degrade to defaults")
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	doc := &model.Document{}
	ApplyDefaults(doc)
	once := *doc
	ApplyDefaults(doc)
	if doc.Goals != once.Goals || doc.LastDate != once.LastDate || doc.Settings != once.Settings {
		t.Error("applying defaults twice must equal applying once")
	}
}

func TestApplyDefaults_DoesNotClobber(t *testing.T) {
	doc := &model.Document{
		Goals:    model.Goals{Kcal: 1800, Protein: 120, Carb: 180, Fat: 50},
		LastDate: "2026-03-01",
	}
	doc.Budget = model.BudgetState{Maintenance: 2600, BudgetStart: 9000, BudgetLeft: 4500,
		CommittedDays: map[string]bool{"2026-02-28": true}}
	ApplyDefaults(doc)

	if doc.Goals.Kcal != 1800 {
		t.Error("present goals clobbered")
	}
	if doc.LastDate != "2026-03-01" {
		t.Error("present lastDate clobbered")
	}
	if doc.Budget.BudgetLeft != 4500 || !doc.Budget.Committed("2026-02-28") {
		t.Error("present budget state clobbered")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := s.LoadOrInit()

	Configure(doc, 9000, 2400, model.ModeCut)
	if _, err := Commit(doc, "2026-01-09", 2000); err != nil {
		t.Fatal(err)
	}
	AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{ID: "e1", Name: "Oats", Grams: 80, Protein: 10.4, Carb: 48, Fat: 5.6}))
	AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{ID: "e2", Name: "Cola", Grams: 330, Kcal: 139, ManualKcal: true}))
	AddEntry(doc, "2026-01-11", ResolveKcal(model.FoodEntry{ID: "e3", Name: "Eintrag", Protein: 30}))
	AddTemplate(doc, model.Template{ID: "t1", Name: "Haferflocken", BaseGrams: 100, Protein: 13, Carb: 60, Fat: 7})
	RememberRecent(doc, doc.Days["2026-01-10"][0], model.Per100{Protein: 13, Carb: 60, Fat: 7})
	doc.LastDate = "2026-01-11"

	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}

	loaded := s.LoadOrInit()
	if !reflect.DeepEqual(doc, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", doc, loaded)
	}
}

func TestSave_DayKeysAreTopLevel(t *testing.T) {
	s := NewStore(t.TempDir())
	doc := s.LoadOrInit()
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "e1", Name: "Oats"})
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"day_2026-01-10"`) {
		t.Errorf("document missing top-level day key:\n%s", data)
	}
	if !strings.Contains(string(data), `"committedDays"`) || !strings.Contains(string(data), `"lastDate"`) {
		t.Errorf("document missing fixed keys:\n%s", data)
	}
}

func TestMutate_ReadModifyWrite(t *testing.T) {
	s := NewStore(t.TempDir())

	err := s.Mutate(func(doc *model.Document) error {
		AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{Name: "Banane", Carb: 23}))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	doc := s.LoadOrInit()
	if len(doc.Entries("2026-01-10")) != 1 {
		t.Error("mutation not persisted")
	}
}

func TestWipe(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Save(s.LoadOrInit()); err != nil {
		t.Fatal(err)
	}
	if err := s.Wipe(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("ledger file should be gone")
	}
	// Wiping twice is fine.
	if err := s.Wipe(); err != nil {
		t.Errorf("second wipe: %v", err)
	}
}
