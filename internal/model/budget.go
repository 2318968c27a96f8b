package model

// KcalPerKgFat converts stored kilocalories to kilograms of body fat for
// display. 1 kg fat ≈ 9000 kcal. Kcal stays the source of truth; the kg
// figure is never stored or read back.
const KcalPerKgFat = 9000

// Mode selects which delta formula a commit uses.
type Mode string

const (
	// ModeCut targets a cumulative calorie deficit.
	ModeCut Mode = "cut"
	// ModeBulk targets a cumulative calorie surplus.
	ModeBulk Mode = "bulk"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCut || m == ModeBulk
}

// BudgetState tracks the long-horizon energy budget. BudgetStart and
// BudgetLeft are kilocalories; 0 <= BudgetLeft <= BudgetStart holds after
// every commit. A zero BudgetStart means the engine is unconfigured.
type BudgetState struct {
	Maintenance   float64         `json:"maintenance"`
	BudgetStart   float64         `json:"budgetStart"`
	BudgetLeft    float64         `json:"budgetLeft"`
	CommittedDays map[string]bool `json:"committedDays"`
}

// DefaultBudget returns the unconfigured budget state.
func DefaultBudget() BudgetState {
	return BudgetState{
		Maintenance:   2400,
		CommittedDays: map[string]bool{},
	}
}

// Committed reports whether date was already folded into the budget.
func (b BudgetState) Committed(date string) bool {
	return b.CommittedDays[date]
}

// KgEquivalent converts a kcal amount to kilograms of fat for display.
func KgEquivalent(kcal float64) float64 {
	return kcal / KcalPerKgFat
}

// Settings holds presentation-facing toggles persisted in the document.
type Settings struct {
	Mode Mode `json:"mode"`
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{Mode: ModeCut}
}
