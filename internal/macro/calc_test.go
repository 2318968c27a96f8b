package macro

import (
	"math/rand"
	"testing"

	"github.com/schmidtrico91/rico-mealtracker-main/internal/model"
)

func TestKcalFromMacros(t *testing.T) {
	cases := []struct {
		p, c, f float64
		want    float64
	}{
		{0, 0, 0, 0},
		{50, 95, 15, 715},
		{150, 300, 60, 2340},
		{1, 0, 0, 4},
		{0, 0, 1, 9},
		{0.5, 0.5, 0.5, 8.5},
	}
	for _, tc := range cases {
		if got := KcalFromMacros(tc.p, tc.c, tc.f); got != tc.want {
			t.Errorf("KcalFromMacros(%v, %v, %v) = %v, want %v", tc.p, tc.c, tc.f, got, tc.want)
		}
	}
}

func TestSum_EmptyIsZero(t *testing.T) {
	if s := Sum(nil); s != (model.MacroSum{}) {
		t.Errorf("Sum(nil) = %+v, want zero tuple", s)
	}
	if s := Sum([]model.FoodEntry{}); s != (model.MacroSum{}) {
		t.Errorf("Sum([]) = %+v, want zero tuple", s)
	}
}

func TestSum_Basic(t *testing.T) {
	entries := []model.FoodEntry{
		{Kcal: 300, Protein: 20, Carb: 30, Fat: 10},
		{Kcal: 150, Protein: 5, Carb: 25, Fat: 2.5},
	}
	s := Sum(entries)
	if s.Kcal != 450 || s.Protein != 25 || s.Carb != 55 || s.Fat != 12.5 {
		t.Errorf("Sum = %+v", s)
	}
}

// Sum must be invariant under permutation of the entry list.
func TestSum_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := make([]model.FoodEntry, 30)
	for i := range entries {
		entries[i] = model.FoodEntry{
			Kcal:    rng.Intn(900),
			Protein: float64(rng.Intn(80)),
			Carb:    float64(rng.Intn(120)),
			Fat:     float64(rng.Intn(40)),
		}
	}
	want := Sum(entries)

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]model.FoodEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if got := Sum(shuffled); got != want {
			t.Fatalf("permutation %d: Sum = %+v, want %+v", trial, got, want)
		}
	}
}

// Sum of sums over sublists must equal the sum of the whole list.
func TestSum_SplitConcat(t *testing.T) {
	entries := []model.FoodEntry{
		{Kcal: 120, Protein: 10, Carb: 5, Fat: 6},
		{Kcal: 80, Protein: 2, Carb: 18, Fat: 0.5},
		{Kcal: 410, Protein: 35, Carb: 40, Fat: 9},
		{Kcal: 95, Protein: 0, Carb: 24, Fat: 0},
	}
	whole := Sum(entries)

	for split := 0; split <= len(entries); split++ {
		left := Sum(entries[:split])
		right := Sum(entries[split:])
		combined := model.MacroSum{
			Kcal:    left.Kcal + right.Kcal,
			Protein: left.Protein + right.Protein,
			Carb:    left.Carb + right.Carb,
			Fat:     left.Fat + right.Fat,
		}
		if combined != whole {
			t.Errorf("split at %d: sum of sums %+v != whole %+v", split, combined, whole)
		}
	}
}

func TestScalePer100_MacrosOnly(t *testing.T) {
	basis := model.Per100{Protein: 10, Carb: 20, Fat: 5}
	p, c, f, kcal := ScalePer100(basis, 250)
	if p != 25 || c != 50 || f != 12.5 {
		t.Errorf("macros = %v/%v/%v, want 25/50/12.5", p, c, f)
	}
	// 25*4 + 50*4 + 12.5*9 = 412.5 -> 413
	if kcal != 413 {
		t.Errorf("kcal = %d, want 413 (derived from scaled macros)", kcal)
	}
}

func TestScalePer100_DirectKcalWins(t *testing.T) {
	basis := model.Per100{Protein: 10, Carb: 20, Fat: 5, Kcal: 200}
	_, _, _, kcal := ScalePer100(basis, 150)
	if kcal != 300 {
		t.Errorf("kcal = %d, want 300 (direct per-100g kcal scaled)", kcal)
	}
}

func TestScalePer100_OneDecimalRounding(t *testing.T) {
	basis := model.Per100{Protein: 3.33, Carb: 0, Fat: 0}
	p, _, _, _ := ScalePer100(basis, 50)
	if p != 1.7 {
		t.Errorf("protein = %v, want 1.7", p)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5) != 0 {
		t.Error("negative input must clamp to 0")
	}
	if Clamp(12.5) != 12.5 {
		t.Error("positive input must pass through")
	}
}

func TestRoundKcal(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{2339.5, 2340},
		{2339.4, 2339},
		{-10, 0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundKcal(tc.in); got != tc.want {
			t.Errorf("RoundKcal(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(1200, 2400); got != 0.5 {
		t.Errorf("Progress(1200, 2400) = %v, want 0.5", got)
	}
	if got := Progress(3000, 2400); got != 1 {
		t.Errorf("over target must clamp to 1, got %v", got)
	}
	if got := Progress(100, 0); got != 0 {
		t.Errorf("zero target must yield 0, got %v", got)
	}
}
