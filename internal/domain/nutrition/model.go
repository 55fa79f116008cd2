package nutrition

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidProfile       = errors.New("invalid biometric profile")
	ErrInvalidSex           = errors.New("invalid sex")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidGoal          = errors.New("invalid goal")
)

type Sex uint8

const (
	Male Sex = iota + 1
	Female
)

var sexNames = [...]string{
	Male:   "male",
	Female: "female",
}

func Sexes() []Sex {
	return []Sex{Male, Female}
}

func ParseSex(s string) (Sex, error) {
	switch normalize(s) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return 0, fmt.Errorf("%w: %q, choose one of: male, female", ErrInvalidSex, s)
}

func (s Sex) Valid() bool {
	return s >= Male && s <= Female
}

func (s Sex) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sex(%d)", s)
	}
	return sexNames[s]
}

func (s Sex) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidSex
	}
	return []byte(s.String()), nil
}

func (s *Sex) UnmarshalText(text []byte) (err error) {
	*s, err = ParseSex(string(text))
	return err
}

type ActivityLevel uint8

const (
	Sedentary ActivityLevel = iota + 1
	LightlyActive
	ModeratelyActive
	VeryActive
	Athletic
)

var activityLevelNames = [...]string{
	Sedentary:        "sedentary",
	LightlyActive:    "lightly_active",
	ModeratelyActive: "moderately_active",
	VeryActive:       "very_active",
	Athletic:         "athletic",
}

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, Athletic}
}

// ParseActivityLevel accepts the canonical names as well as their spaced
// and hyphenated forms ("lightly active", "lightly-active").
func ParseActivityLevel(s string) (ActivityLevel, error) {
	n := strings.NewReplacer(" ", "_", "-", "_").Replace(normalize(s))
	for _, level := range ActivityLevels() {
		if activityLevelNames[level] == n {
			return level, nil
		}
	}
	return 0, fmt.Errorf(
		"%w: %q, choose one of: sedentary, lightly active, moderately active, very active, athletic",
		ErrInvalidActivityLevel, s,
	)
}

func (a ActivityLevel) Valid() bool {
	return a >= Sedentary && a <= Athletic
}

func (a ActivityLevel) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ActivityLevel(%d)", a)
	}
	return activityLevelNames[a]
}

// Label is the human readable form used in reports: "Lightly active".
func (a ActivityLevel) Label() string {
	name := strings.ReplaceAll(a.String(), "_", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}

func (a ActivityLevel) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, ErrInvalidActivityLevel
	}
	return []byte(a.String()), nil
}

func (a *ActivityLevel) UnmarshalText(text []byte) (err error) {
	*a, err = ParseActivityLevel(string(text))
	return err
}

// Goal drives both the calorie adjustment and the macro split.
// "loss" is accepted as a spelling of GoalLose.
type Goal uint8

const (
	GoalLose Goal = iota + 1
	GoalMaintain
	GoalGain
)

var goalNames = [...]string{
	GoalLose:     "lose",
	GoalMaintain: "maintain",
	GoalGain:     "gain",
}

func Goals() []Goal {
	return []Goal{GoalLose, GoalMaintain, GoalGain}
}

func ParseGoal(s string) (Goal, error) {
	switch normalize(s) {
	case "lose", "loss":
		return GoalLose, nil
	case "maintain":
		return GoalMaintain, nil
	case "gain":
		return GoalGain, nil
	}
	return 0, fmt.Errorf("%w: %q, choose one of: lose, maintain, gain", ErrInvalidGoal, s)
}

func (g Goal) Valid() bool {
	return g >= GoalLose && g <= GoalGain
}

func (g Goal) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Goal(%d)", g)
	}
	return goalNames[g]
}

func (g Goal) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, ErrInvalidGoal
	}
	return []byte(g.String()), nil
}

func (g *Goal) UnmarshalText(text []byte) (err error) {
	*g, err = ParseGoal(string(text))
	return err
}

type BiometricProfile struct {
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

func NewBiometricProfile(
	age int,
	sex Sex,
	weightKg float64,
	heightCm float64,
	activityLevel ActivityLevel,
	goal Goal,
) (BiometricProfile, error) {
	p := BiometricProfile{
		Age:           age,
		Sex:           sex,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		ActivityLevel: activityLevel,
		Goal:          goal,
	}
	if err := p.Validate(); err != nil {
		return BiometricProfile{}, err
	}
	return p, nil
}

// Validate reports every broken field at once.
func (p BiometricProfile) Validate() error {
	var errs []error
	if p.Age <= 0 {
		errs = append(errs, invalidProfileErr("age must be positive, got %d", p.Age))
	}
	if !PositiveFinite(p.WeightKg) {
		errs = append(errs, invalidProfileErr("weight must be a positive number, got %v", p.WeightKg))
	}
	if !PositiveFinite(p.HeightCm) {
		errs = append(errs, invalidProfileErr("height must be a positive number, got %v", p.HeightCm))
	}
	if !p.Sex.Valid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSex, p.Sex))
	}
	if !p.ActivityLevel.Valid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidActivityLevel, p.ActivityLevel))
	}
	if !p.Goal.Valid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidGoal, p.Goal))
	}
	return errors.Join(errs...)
}

func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalidProfileErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
