package nutrition

import (
	"fmt"
)

const (
	KcalPerGramProtein = 4.0
	KcalPerGramFat     = 9.0
	KcalPerGramCarb    = 4.0
)

// MacroRatio holds the share of daily energy given to each macronutrient, in percent.
type MacroRatio struct {
	ProteinPct float64 `json:"protein_pct"`
	FatPct     float64 `json:"fat_pct"`
	CarbPct    float64 `json:"carb_pct"`
}

var macroRatios = [...]MacroRatio{
	GoalLose:     {ProteinPct: 30, FatPct: 25, CarbPct: 45},
	GoalMaintain: {ProteinPct: 25, FatPct: 30, CarbPct: 45},
	GoalGain:     {ProteinPct: 35, FatPct: 25, CarbPct: 40},
}

type Macros struct {
	ProteinGrams float64 `json:"protein_grams"`
	FatGrams     float64 `json:"fat_grams"`
	CarbGrams    float64 `json:"carb_grams"`
}

// Kcal converts the split back to energy using the 4/9/4 densities.
func (m Macros) Kcal() float64 {
	return m.ProteinGrams*KcalPerGramProtein + m.FatGrams*KcalPerGramFat + m.CarbGrams*KcalPerGramCarb
}

func RatioFor(goal Goal) (MacroRatio, error) {
	if !goal.Valid() {
		return MacroRatio{}, fmt.Errorf("%w: %s", ErrInvalidGoal, goal)
	}
	return macroRatios[goal], nil
}

func SplitMacros(calories Calories, goal Goal) (Macros, error) {
	ratio, err := RatioFor(goal)
	if err != nil {
		return Macros{}, err
	}

	kcal := float64(calories)
	return Macros{
		ProteinGrams: Round2(kcal * ratio.ProteinPct / 100 / KcalPerGramProtein),
		FatGrams:     Round2(kcal * ratio.FatPct / 100 / KcalPerGramFat),
		CarbGrams:    Round2(kcal * ratio.CarbPct / 100 / KcalPerGramCarb),
	}, nil
}
