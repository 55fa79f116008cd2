package nutrition_test

import (
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitMacros_ReferenceScenario(t *testing.T) {
	macros, err := nutrition.SplitMacros(2594.31, nutrition.GoalMaintain)
	require.NoError(t, err)
	require.InDelta(t, 162.14, macros.ProteinGrams, 1e-9)
	require.InDelta(t, 86.48, macros.FatGrams, 1e-9)
	require.InDelta(t, 291.86, macros.CarbGrams, 1e-9)
}

func TestSplitMacros_RatiosSumTo100(t *testing.T) {
	for _, goal := range nutrition.Goals() {
		ratio, err := nutrition.RatioFor(goal)
		require.NoError(t, err)
		require.InDelta(t, 100.0, ratio.ProteinPct+ratio.FatPct+ratio.CarbPct, 1e-9, "goal %s", goal)
	}
}

func TestSplitMacros_Table(t *testing.T) {
	tests := []struct {
		goal nutrition.Goal
		want nutrition.MacroRatio
	}{
		{goal: nutrition.GoalLose, want: nutrition.MacroRatio{ProteinPct: 30, FatPct: 25, CarbPct: 45}},
		{goal: nutrition.GoalMaintain, want: nutrition.MacroRatio{ProteinPct: 25, FatPct: 30, CarbPct: 45}},
		{goal: nutrition.GoalGain, want: nutrition.MacroRatio{ProteinPct: 35, FatPct: 25, CarbPct: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.goal.String(), func(t *testing.T) {
			got, err := nutrition.RatioFor(tt.goal)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitMacros_EnergyRoundTrip(t *testing.T) {
	for _, goal := range nutrition.Goals() {
		for _, kcal := range []nutrition.Calories{0, 1200, 1673.75, 2594.31, 3999.99, 5321.07} {
			macros, err := nutrition.SplitMacros(kcal, goal)
			require.NoError(t, err)
			require.InDelta(t, float64(kcal), macros.Kcal(), 0.1, "goal %s kcal %s", goal, kcal)
			require.GreaterOrEqual(t, macros.ProteinGrams, 0.0)
			require.GreaterOrEqual(t, macros.FatGrams, 0.0)
			require.GreaterOrEqual(t, macros.CarbGrams, 0.0)
		}
	}
}

func TestSplitMacros_InvalidGoal(t *testing.T) {
	for _, goal := range []nutrition.Goal{0, nutrition.Goal(4), nutrition.Goal(255)} {
		macros, err := nutrition.SplitMacros(2000, goal)
		require.ErrorIs(t, err, nutrition.ErrInvalidGoal)
		require.Zero(t, macros)
	}
}
