package nutrition_test

import (
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	plan, err := nutrition.NewPlan("plan-1", referenceProfile())
	require.NoError(t, err)
	require.Equal(t, "plan-1", plan.ID())
	require.Equal(t, 1673.75, plan.BMR)
	require.InDelta(t, 2594.31, float64(plan.Calories), 1e-9)
	require.InDelta(t, 162.14, plan.Macros.ProteinGrams, 1e-9)

	events := plan.PopEvents()
	require.Len(t, events, 1)
	require.Equal(t, nutrition.EventPlanCalculated, events[0].Type())
	calculated, ok := events[0].(nutrition.PlanCalculated)
	require.True(t, ok)
	require.Equal(t, "plan-1", calculated.PlanID)
	require.Equal(t, nutrition.GoalMaintain, calculated.Goal)

	require.Empty(t, plan.PopEvents())
}

func TestNewPlan_NoPartialResult(t *testing.T) {
	p := referenceProfile()
	p.ActivityLevel = 0
	plan, err := nutrition.NewPlan("plan-2", p)
	require.ErrorIs(t, err, nutrition.ErrInvalidActivityLevel)
	require.Nil(t, plan)
}

func TestRejectReason(t *testing.T) {
	require.Equal(t, "invalid_activity_level", nutrition.RejectReason(nutrition.ErrInvalidActivityLevel))
	require.Equal(t, "invalid_goal", nutrition.RejectReason(nutrition.ErrInvalidGoal))
	require.Equal(t, "invalid_sex", nutrition.RejectReason(nutrition.ErrInvalidSex))
	require.Equal(t, "invalid_profile", nutrition.RejectReason(nutrition.ErrInvalidProfile))
	require.Equal(t, "unknown", nutrition.RejectReason(nil))
}
