package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

// RememberRecent pushes an added entry onto the recents list, newest
// first, deduplicated by name, capped at model.MaxRecents. The per-100g
// basis, when present, rides along so a re-add can rescale.
func RememberRecent(doc *model.Document, e model.FoodEntry, basis model.Per100) {
	r := model.Recent{
		ID:      e.ID,
		Name:    e.Name,
		Grams:   e.Grams,
		Protein: e.Protein,
		Carb:    e.Carb,
		Fat:     e.Fat,
		Kcal:    e.Kcal,
	}
	if !basis.Zero() {
		r.Per100Protein = basis.Protein
		r.Per100Carb = basis.Carb
		r.Per100Fat = basis.Fat
		r.Per100Kcal = basis.Kcal
	}

	kept := doc.Recents[:0]
	for _, old := range doc.Recents {
		if !strings.EqualFold(old.Name, r.Name) {
			kept = append(kept, old)
		}
	}
	doc.Recents = append([]model.Recent{r}, kept...)
	if len(doc.Recents) > model.MaxRecents {
		doc.Recents = doc.Recents[:model.MaxRecents]
	}
}

// RecentBasis returns a recent's per-100g basis, reconstructing one from
// its absolute values when no explicit basis was stored.
func RecentBasis(r model.Recent) model.Per100 {
	if r.Per100Protein != 0 || r.Per100Carb != 0 || r.Per100Fat != 0 || r.Per100Kcal != 0 {
		return model.Per100{
			Protein: r.Per100Protein,
			Carb:    r.Per100Carb,
			Fat:     r.Per100Fat,
			Kcal:    r.Per100Kcal,
		}
	}
	if r.Grams <= 0 {
		return model.Per100{}
	}
	factor := 100 / r.Grams
	return model.Per100{
		Protein: r.Protein * factor,
		Carb:    r.Carb * factor,
		Fat:     r.Fat * factor,
		Kcal:    float64(r.Kcal) * factor,
	}
}

// AddTemplate stores a per-100g template, generating an id when needed.
func AddTemplate(doc *model.Document, t model.Template) model.Template {
	if strings.TrimSpace(t.Name) == "" {
		t.Name = model.DefaultEntryName
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.BaseGrams <= 0 {
		t.BaseGrams = 100
	}
	doc.Templates = append(doc.Templates, t)
	return t
}

// RemoveTemplate deletes a template by id; unknown ids are a no-op.
func RemoveTemplate(doc *model.Document, id string) {
	n := 0
	for _, t := range doc.Templates {
		if t.ID != id {
			doc.Templates[n] = t
			n++
		}
	}
	doc.Templates = doc.Templates[:n]
}

// FindTemplate looks a template up by id or (case-insensitive) name.
func FindTemplate(doc *model.Document, ref string) (model.Template, bool) {
	for _, t := range doc.Templates {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t, true
		}
	}
	return model.Template{}, false
}

// TemplateBasis returns a template's per-100g scaling basis.
func TemplateBasis(t model.Template) model.Per100 {
	return model.Per100{Protein: t.Protein, Carb: t.Carb, Fat: t.Fat}
}
