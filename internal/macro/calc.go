// Package macro provides the pure macronutrient arithmetic: kcal
// derivation, entry summing, and per-100g scaling.
package macro

import (
	"math"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

// Kilocalories per gram of each macronutrient (Atwater factors).
const (
	KcalPerGramProtein = 4
	KcalPerGramCarb    = 4
	KcalPerGramFat     = 9
)

// KcalFromMacros derives kilocalories from macro grams. Total over all
// inputs; negative values are the caller's problem (Clamp at the input
// boundary).
func KcalFromMacros(proteinG, carbG, fatG float64) float64 {
	return proteinG*KcalPerGramProtein + carbG*KcalPerGramCarb + fatG*KcalPerGramFat
}

// Sum folds a day's entries into aggregate kcal and macro grams. The
// empty sequence sums to the zero tuple; the fold is a pure sum and so
// invariant under reordering or splitting the list.
func Sum(entries []model.FoodEntry) model.MacroSum {
	var s model.MacroSum
	for _, e := range entries {
		s.Kcal += e.Kcal
		s.Protein += e.Protein
		s.Carb += e.Carb
		s.Fat += e.Fat
	}
	return s
}

// ScalePer100 linearly scales a per-100g basis to a target gram amount.
// Macro grams are rounded to one decimal place, kcal to the nearest
// integer. When the basis has no direct kcal figure it is derived from
// the scaled macros instead.
func ScalePer100(basis model.Per100, grams float64) (proteinG, carbG, fatG float64, kcal int) {
	factor := Clamp(grams) / 100

	proteinG = Round1(basis.Protein * factor)
	carbG = Round1(basis.Carb * factor)
	fatG = Round1(basis.Fat * factor)

	if basis.Kcal > 0 {
		kcal = RoundKcal(basis.Kcal * factor)
	} else {
		kcal = RoundKcal(KcalFromMacros(proteinG, carbG, fatG))
	}
	return proteinG, carbG, fatG, kcal
}

// Clamp coerces negative (or NaN) numeric input to 0. The input boundary
// is deliberately permissive: bad values become zero, not errors.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundKcal rounds a kcal value to the nearest non-negative integer.
func RoundKcal(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// Progress returns the 0..1 ratio of current against target, clamped.
// A zero target yields 0 so empty goals never divide by zero.
func Progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
