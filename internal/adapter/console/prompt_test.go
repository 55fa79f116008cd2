package console_test

import (
	"bytes"
	"context"
	"github.com/burenotti/go_nutrition/internal/adapter/console"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadProfile(t *testing.T) {
	input := strings.Join([]string{
		"25",
		"Male",
		"70",
		"175",
		"moderately active",
		"maintain",
	}, "\n")

	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader(input), &out)

	profile, err := p.ReadProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, nutrition.BiometricProfile{
		Age:           25,
		Sex:           nutrition.Male,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: nutrition.ModeratelyActive,
		Goal:          nutrition.GoalMaintain,
	}, profile)
	require.Contains(t, out.String(), "Welcome to the Daily Calorie and Macronutrient Calculator!")
	require.NotContains(t, out.String(), "Invalid input")
}

func TestPrompter_RetriesInvalidAnswers(t *testing.T) {
	input := strings.Join([]string{
		"twenty", "-3", "30",
		"robot", "female",
		"heavy", "NaN", "Inf", "62.5",
		"0", "168",
		"extreme", "athletic",
		"bulk", "loss",
	}, "\n")

	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader(input), &out)

	profile, err := p.ReadProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, profile.Age)
	require.Equal(t, nutrition.Female, profile.Sex)
	require.Equal(t, 62.5, profile.WeightKg)
	require.Equal(t, 168.0, profile.HeightCm)
	require.Equal(t, nutrition.Athletic, profile.ActivityLevel)
	require.Equal(t, nutrition.GoalLose, profile.Goal)

	text := out.String()
	require.Equal(t, 2, strings.Count(text, "Please enter a valid age (numeric)."))
	require.Equal(t, 1, strings.Count(text, "Please enter 'male' or 'female'."))
	require.Equal(t, 3, strings.Count(text, "Please enter a valid weight (numeric)."))
	require.Equal(t, 1, strings.Count(text, "Please enter a valid height (numeric)."))
	require.Equal(t, 2, strings.Count(text, "Please choose from the provided options."))
}

func TestPrompter_MaxAttempts(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("a\nb\nc\n25\n"), &out, console.MaxAttempts(2))

	_, err := p.ReadProfile(context.Background())
	require.ErrorIs(t, err, console.ErrTooManyAttempts)
}

func TestPrompter_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("25\nmale\n"), &out)

	_, err := p.ReadProfile(context.Background())
	require.ErrorIs(t, err, console.ErrNoInput)
}

func TestPrompter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("25\n"), &out)

	_, err := p.ReadProfile(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
