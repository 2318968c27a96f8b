package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/macro"
	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

// NewEntryID returns a fresh opaque entry id, unique across the store.
func NewEntryID() string {
	return uuid.NewString()
}

// ResolveKcal fixes an entry's kcal at write time. Manual entries keep
// the supplied value (clamped, rounded); everything else derives from
// the macros. Resolution happens exactly once, at add/update, so later
// macro edits elsewhere never rewrite a stored kcal.
func ResolveKcal(e model.FoodEntry) model.FoodEntry {
	e.Grams = macro.Clamp(e.Grams)
	e.Protein = macro.Clamp(e.Protein)
	e.Carb = macro.Clamp(e.Carb)
	e.Fat = macro.Clamp(e.Fat)

	if e.ManualKcal {
		if e.Kcal < 0 {
			e.Kcal = 0
		}
	} else {
		e.Kcal = macro.RoundKcal(macro.KcalFromMacros(e.Protein, e.Carb, e.Fat))
	}
	return e
}

// AddEntry appends an entry to the date's ledger, creating the day if
// absent. The entry's kcal must already be resolved; the ledger does not
// recompute it. A blank name falls back to the stock label and a missing
// id is generated.
func AddEntry(doc *model.Document, date string, e model.FoodEntry) model.FoodEntry {
	if strings.TrimSpace(e.Name) == "" {
		e.Name = model.DefaultEntryName
	}
	if e.ID == "" {
		e.ID = NewEntryID()
	}
	doc.Days[date] = append(doc.Days[date], e)
	return e
}

// UpdateEntry replaces the entry with the given id in the date's ledger,
// preserving its position. Returns ErrNotFound when the id is absent.
func UpdateEntry(doc *model.Document, date, id string, e model.FoodEntry) error {
	entries := doc.Days[date]
	for i := range entries {
		if entries[i].ID == id {
			e.ID = id
			if strings.TrimSpace(e.Name) == "" {
				e.Name = model.DefaultEntryName
			}
			entries[i] = e
			return nil
		}
	}
	return ErrNotFound
}

// RemoveEntry filters the entry out of the date's ledger. Removing an
// unknown id is a no-op; an emptied day is dropped from the map.
func RemoveEntry(doc *model.Document, date, id string) {
	entries := doc.Days[date]
	n := 0
	for _, e := range entries {
		if e.ID != id {
			entries[n] = e
			n++
		}
	}
	if n == 0 {
		delete(doc.Days, date)
		return
	}
	doc.Days[date] = entries[:n]
}

// FindEntry returns the entry with the given id for date.
func FindEntry(doc *model.Document, date, id string) (model.FoodEntry, bool) {
	for _, e := range doc.Days[date] {
		if e.ID == id {
			return e, true
		}
	}
	return model.FoodEntry{}, false
}

// DaySum returns the aggregate macros for date.
func DaySum(doc *model.Document, date string) model.MacroSum {
	return macro.Sum(doc.Days[date])
}
