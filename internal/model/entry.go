// Package model defines the persisted document types for the mealtracker.
package model

// DefaultEntryName is used when an entry is added with a blank name.
const DefaultEntryName = "Eintrag"

// FoodEntry is one logged food item within a day.
// Kcal is resolved once at write time: either derived from the macros or,
// when ManualKcal is set, taken verbatim from user input. It is never
// recomputed afterwards, so editing macros elsewhere cannot silently
// rewrite history.
type FoodEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Grams      float64 `json:"grams"`
	Protein    float64 `json:"p"`
	Carb       float64 `json:"c"`
	Fat        float64 `json:"f"`
	Kcal       int     `json:"kcal"`
	ManualKcal bool    `json:"manualKcal,omitempty"`
}

// MacroSum is the aggregate of a day's entries.
type MacroSum struct {
	Kcal    int
	Protein float64
	Carb    float64
	Fat     float64
}

// Goals holds the daily targets. The kcal goal is independently settable;
// it is not forced to equal the macro-derived value (the stock defaults
// 2400 vs 150/300/60 already disagree by 60 kcal).
type Goals struct {
	Kcal    int     `json:"kcal"`
	Protein float64 `json:"p"`
	Carb    float64 `json:"c"`
	Fat     float64 `json:"f"`
}

// DefaultGoals returns the stock daily targets.
func DefaultGoals() Goals {
	return Goals{Kcal: 2400, Protein: 150, Carb: 300, Fat: 60}
}

// Per100 is a scaling basis: macro and calorie values per 100 grams of a
// food. Kcal may be zero when the source only provided macros.
type Per100 struct {
	Protein float64
	Carb    float64
	Fat     float64
	Kcal    float64
}

// Zero reports whether the basis carries no data.
func (b Per100) Zero() bool {
	return b.Protein == 0 && b.Carb == 0 && b.Fat == 0 && b.Kcal == 0
}

// Template is a reusable per-100g food definition.
type Template struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BaseGrams float64 `json:"baseGrams"`
	Protein   float64 `json:"p"`
	Carb      float64 `json:"c"`
	Fat       float64 `json:"f"`
}

// Recent is a previously added entry kept for quick re-adding. The
// optional per-100g fields are carried along when the entry was scaled
// from a basis, so re-adds can rescale to a different gram amount.
type Recent struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Grams   float64 `json:"grams"`
	Protein float64 `json:"p"`
	Carb    float64 `json:"c"`
	Fat     float64 `json:"f"`
	Kcal    int     `json:"kcal"`

	Per100Protein float64 `json:"p100,omitempty"`
	Per100Carb    float64 `json:"c100,omitempty"`
	Per100Fat     float64 `json:"f100,omitempty"`
	Per100Kcal    float64 `json:"kcal100,omitempty"`
}

// MaxRecents bounds the recents list.
const MaxRecents = 20
