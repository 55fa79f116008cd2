package nutrition

import (
	"fmt"
	"math"
)

const GoalAdjustmentKcal = 500.0

var sexOffsets = [...]float64{
	Male:   5,
	Female: -161,
}

var activityMultipliers = [...]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	Athletic:         1.9,
}

var goalAdjustments = [...]float64{
	GoalLose:     -GoalAdjustmentKcal,
	GoalMaintain: 0,
	GoalGain:     GoalAdjustmentKcal,
}

// Calories is a daily energy target in kcal, rounded to two decimals.
// No lower bound is enforced, so extreme inputs can go negative.
type Calories float64

func (c Calories) String() string {
	return fmt.Sprintf("%.2f", float64(c))
}

func ActivityMultiplier(level ActivityLevel) (float64, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidActivityLevel, level)
	}
	return activityMultipliers[level], nil
}

// BMR returns the unrounded Mifflin-St Jeor basal metabolic rate.
func BMR(p BiometricProfile) (float64, error) {
	if !p.Sex.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSex, p.Sex)
	}
	return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + sexOffsets[p.Sex], nil
}

func EstimateCalories(p BiometricProfile) (Calories, error) {
	multiplier, err := ActivityMultiplier(p.ActivityLevel)
	if err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	bmr, err := BMR(p)
	if err != nil {
		return 0, err
	}

	daily := bmr*multiplier + goalAdjustments[p.Goal]
	return Calories(Round2(daily)), nil
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
