package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

var (
	ErrNoInput         = errors.New("no more input")
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Prompter collects a BiometricProfile interactively, asking again after
// every invalid answer.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	logger      *slog.Logger
	maxAttempts int
}

type Option func(*Prompter)

// MaxAttempts bounds retries per question; zero keeps asking forever.
func MaxAttempts(n int) Option {
	return func(p *Prompter) {
		p.maxAttempts = n
	}
}

func Logger(l *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = l
	}
}

func NewPrompter(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Prompter) ReadProfile(ctx context.Context) (nutrition.BiometricProfile, error) {
	var profile nutrition.BiometricProfile
	fmt.Fprintln(p.out, "Welcome to the Daily Calorie and Macronutrient Calculator!")

	steps := []struct {
		prompt  string
		invalid string
		accept  func(answer string) error
	}{
		{
			prompt:  "Enter your age: ",
			invalid: "Invalid input. Please enter a valid age (numeric).",
			accept: func(s string) (err error) {
				profile.Age, err = parseAge(s)
				return err
			},
		},
		{
			prompt:  "Enter your gender (male/female): ",
			invalid: "Invalid input. Please enter 'male' or 'female'.",
			accept: func(s string) (err error) {
				profile.Sex, err = nutrition.ParseSex(s)
				return err
			},
		},
		{
			prompt:  "Enter your weight in kilograms: ",
			invalid: "Invalid input. Please enter a valid weight (numeric).",
			accept: func(s string) (err error) {
				profile.WeightKg, err = parseMeasure(s)
				return err
			},
		},
		{
			prompt:  "Enter your height in centimeters: ",
			invalid: "Invalid input. Please enter a valid height (numeric).",
			accept: func(s string) (err error) {
				profile.HeightCm, err = parseMeasure(s)
				return err
			},
		},
		{
			prompt:  "Enter your activity level (sedentary/lightly active/moderately active/very active/athletic): ",
			invalid: "Invalid input. Please choose from the provided options.",
			accept: func(s string) (err error) {
				profile.ActivityLevel, err = nutrition.ParseActivityLevel(s)
				return err
			},
		},
		{
			prompt:  "Enter your goal (lose/maintain/gain): ",
			invalid: "Invalid input. Please choose from the provided options.",
			accept: func(s string) (err error) {
				profile.Goal, err = nutrition.ParseGoal(s)
				return err
			},
		},
	}

	for _, step := range steps {
		if err := p.ask(ctx, step.prompt, step.invalid, step.accept); err != nil {
			return nutrition.BiometricProfile{}, err
		}
	}

	return nutrition.NewBiometricProfile(
		profile.Age,
		profile.Sex,
		profile.WeightKg,
		profile.HeightCm,
		profile.ActivityLevel,
		profile.Goal,
	)
}

func (p *Prompter) ask(ctx context.Context, prompt, invalid string, accept func(string) error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			return ErrNoInput
		}

		answer := strings.TrimSpace(p.in.Text())
		err := accept(answer)
		if err == nil {
			return nil
		}

		p.logger.DebugContext(ctx, "invalid answer", "prompt", strings.TrimSpace(prompt), "error", err)
		fmt.Fprintln(p.out, invalid)
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, strings.TrimSpace(prompt))
		}
	}
}

func parseAge(s string) (int, error) {
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive", nutrition.ErrInvalidProfile)
	}
	return age, nil
}

func parseMeasure(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !nutrition.PositiveFinite(v) {
		return 0, fmt.Errorf("%w: value must be a positive number", nutrition.ErrInvalidProfile)
	}
	return v, nil
}
