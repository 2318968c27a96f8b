package ledger

import (
	"errors"
	"testing"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

func TestResolveKcal_Derived(t *testing.T) {
	e := ResolveKcal(model.FoodEntry{Protein: 50, Carb: 95, Fat: 15})
	if e.Kcal != 715 {
		t.Errorf("Kcal = %d, want 715", e.Kcal)
	}
}

func TestResolveKcal_ManualOverride(t *testing.T) {
	e := ResolveKcal(model.FoodEntry{Protein: 50, Carb: 95, Fat: 15, Kcal: 600, ManualKcal: true})
	if e.Kcal != 600 {
		t.Errorf("Kcal = %d, want manual 600 (not recomputed)", e.Kcal)
	}
}

func TestResolveKcal_ClampsNegatives(t *testing.T) {
	e := ResolveKcal(model.FoodEntry{Grams: -10, Protein: -5, Carb: 10, Fat: 0})
	if e.Grams != 0 || e.Protein != 0 {
		t.Errorf("negative inputs must clamp to 0, got grams=%v p=%v", e.Grams, e.Protein)
	}
	if e.Kcal != 40 {
		t.Errorf("Kcal = %d, want 40 from clamped macros", e.Kcal)
	}

	m := ResolveKcal(model.FoodEntry{Kcal: -100, ManualKcal: true})
	if m.Kcal != 0 {
		t.Errorf("manual Kcal = %d, want clamped 0", m.Kcal)
	}
}

func TestAddEntry_CreatesDayAndDefaults(t *testing.T) {
	doc := newDoc()
	e := AddEntry(doc, "2026-01-10", ResolveKcal(model.FoodEntry{Name: "  ", Protein: 10}))

	if e.ID == "" {
		t.Error("expected generated id")
	}
	if e.Name != model.DefaultEntryName {
		t.Errorf("Name = %q, want %q", e.Name, model.DefaultEntryName)
	}
	if len(doc.Entries("2026-01-10")) != 1 {
		t.Fatal("entry not appended")
	}
}

func TestAddEntry_PreservesInsertionOrder(t *testing.T) {
	doc := newDoc()
	names := []string{"Frühstück", "Mittag", "Snack", "Abendessen"}
	for _, n := range names {
		AddEntry(doc, "2026-01-10", model.FoodEntry{Name: n})
	}

	entries := doc.Entries("2026-01-10")
	if len(entries) != len(names) {
		t.Fatalf("len = %d, want %d", len(entries), len(names))
	}
	for i, n := range names {
		if entries[i].Name != n {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, n)
		}
	}
}

func TestUpdateEntry_ReplacesInPlace(t *testing.T) {
	doc := newDoc()
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "a", Name: "First"})
	target := AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "b", Name: "Second", Kcal: 100})
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "c", Name: "Third"})

	err := UpdateEntry(doc, "2026-01-10", target.ID, ResolveKcal(model.FoodEntry{Name: "Replaced", Protein: 25}))
	if err != nil {
		t.Fatal(err)
	}

	entries := doc.Entries("2026-01-10")
	if entries[1].Name != "Replaced" || entries[1].Kcal != 100 {
		t.Errorf("entries[1] = %+v, want replaced at same position", entries[1])
	}
	if entries[1].ID != "b" {
		t.Errorf("id = %q, want original id preserved", entries[1].ID)
	}
	if entries[0].Name != "First" || entries[2].Name != "Third" {
		t.Error("neighbors must be untouched")
	}
}

func TestUpdateEntry_UnknownID(t *testing.T) {
	doc := newDoc()
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "a"})

	err := UpdateEntry(doc, "2026-01-10", "nope", model.FoodEntry{Name: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(doc.Entries("2026-01-10")) != 1 {
		t.Error("failed update must not change the day")
	}
}

func TestRemoveEntry(t *testing.T) {
	doc := newDoc()
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "a"})
	AddEntry(doc, "2026-01-10", model.FoodEntry{ID: "b"})

	RemoveEntry(doc, "2026-01-10", "a")
	entries := doc.Entries("2026-01-10")
	if len(entries) != 1 || entries[0].ID != "b" {
		t.Errorf("entries = %+v, want only b", entries)
	}

	// Unknown id: silent no-op.
	RemoveEntry(doc, "2026-01-10", "nope")
	if len(doc.Entries("2026-01-10")) != 1 {
		t.Error("removing unknown id must be a no-op")
	}

	// Removing the last entry drops the day.
	RemoveEntry(doc, "2026-01-10", "b")
	if _, ok := doc.Days["2026-01-10"]; ok {
		t.Error("emptied day should be dropped")
	}
}

func TestDaySum_AbsentDateIsZero(t *testing.T) {
	doc := newDoc()
	if s := DaySum(doc, "1999-12-31"); s != (model.MacroSum{}) {
		t.Errorf("sum of absent date = %+v, want zero", s)
	}
}

func TestRememberRecent_DedupAndCap(t *testing.T) {
	doc := newDoc()
	e := model.FoodEntry{ID: "x", Name: "Skyr", Grams: 200, Protein: 20, Kcal: 120}
	RememberRecent(doc, e, model.Per100{})
	RememberRecent(doc, e, model.Per100{})
	if len(doc.Recents) != 1 {
		t.Fatalf("len(recents) = %d, want deduplicated 1", len(doc.Recents))
	}

	for i := 0; i < model.MaxRecents+5; i++ {
		RememberRecent(doc, model.FoodEntry{ID: NewEntryID(), Name: NewEntryID()}, model.Per100{})
	}
	if len(doc.Recents) != model.MaxRecents {
		t.Errorf("len(recents) = %d, want capped at %d", len(doc.Recents), model.MaxRecents)
	}
}

func TestRecentBasis_Reconstructed(t *testing.T) {
	r := model.Recent{Name: "Reis", Grams: 200, Protein: 6, Carb: 56, Fat: 1, Kcal: 260}
	b := RecentBasis(r)
	if b.Protein != 3 || b.Carb != 28 || b.Fat != 0.5 || b.Kcal != 130 {
		t.Errorf("basis = %+v, want per-100g reconstruction", b)
	}
}

func TestTemplates_CRUDAndLookup(t *testing.T) {
	doc := newDoc()
	tpl := AddTemplate(doc, model.Template{Name: "Haferflocken", Protein: 13, Carb: 60, Fat: 7})
	if tpl.ID == "" || tpl.BaseGrams != 100 {
		t.Errorf("template = %+v, want generated id and 100g base", tpl)
	}

	got, ok := FindTemplate(doc, "haferflocken")
	if !ok || got.ID != tpl.ID {
		t.Fatal("case-insensitive name lookup failed")
	}

	RemoveTemplate(doc, tpl.ID)
	if len(doc.Templates) != 0 {
		t.Error("template not removed")
	}
}
