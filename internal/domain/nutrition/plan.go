package nutrition

import (
	"errors"
	"github.com/burenotti/go_nutrition/internal/domain"
	"time"
)

const (
	EventPlanCalculated = "plan.calculated"
	EventPlanRejected   = "plan.rejected"
)

type PlanCalculated struct {
	domain.BaseEvent
	PlanID        string
	Goal          Goal
	ActivityLevel ActivityLevel
	Calories      Calories
}

type PlanRejected struct {
	domain.BaseEvent
	Reason string
}

// Plan is the outcome of running a profile through both estimation stages.
type Plan struct {
	domain.Aggregate
	PlanID    string
	Profile   BiometricProfile
	BMR       float64
	Calories  Calories
	Macros    Macros
	CreatedAt time.Time
}

func NewPlan(planID string, profile BiometricProfile) (*Plan, error) {
	calories, err := EstimateCalories(profile)
	if err != nil {
		return nil, err
	}

	macros, err := SplitMacros(calories, profile.Goal)
	if err != nil {
		return nil, err
	}

	bmr, err := BMR(profile)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		PlanID:    planID,
		Profile:   profile,
		BMR:       Round2(bmr),
		Calories:  calories,
		Macros:    macros,
		CreatedAt: time.Now().UTC(),
	}
	p.PushEvent(PlanCalculated{
		BaseEvent:     domain.NewBaseEvent(EventPlanCalculated),
		PlanID:        planID,
		Goal:          profile.Goal,
		ActivityLevel: profile.ActivityLevel,
		Calories:      calories,
	})
	return p, nil
}

func (p *Plan) ID() string {
	return p.PlanID
}

// RejectReason classifies a pipeline error for metrics and logs.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidActivityLevel):
		return "invalid_activity_level"
	case errors.Is(err, ErrInvalidGoal):
		return "invalid_goal"
	case errors.Is(err, ErrInvalidSex):
		return "invalid_sex"
	case errors.Is(err, ErrInvalidProfile):
		return "invalid_profile"
	default:
		return "unknown"
	}
}
