package render

import (
	"context"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"io"
	"strconv"
	"strings"
	"time"
)

type TextOptions struct {
	// LineDelay paces the report one line at a time.
	LineDelay time.Duration
}

// Text writes the console report for a plan.
func Text(ctx context.Context, w io.Writer, plan *nutrition.Plan, opts TextOptions) error {
	for i, line := range reportLines(plan) {
		if i > 0 && opts.LineDelay > 0 && line != "" {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.LineDelay):
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func reportLines(plan *nutrition.Plan) []string {
	p := plan.Profile
	return []string{
		"",
		"User Information:",
		"Gender: " + capitalize(p.Sex.String()),
		fmt.Sprintf("Age: %d years", p.Age),
		"Weight: " + formatNumber(p.WeightKg) + " kg",
		"Height: " + formatNumber(p.HeightCm) + " cm",
		"Activity Level: " + p.ActivityLevel.Label(),
		"",
		"Your estimated daily calorie requirement is: " + plan.Calories.String() + " calories.",
		"",
		"Macronutrient Distribution:",
		"Protein: " + formatGrams(plan.Macros.ProteinGrams) + " grams",
		"Fat: " + formatGrams(plan.Macros.FatGrams) + " grams",
		"Carbohydrates: " + formatGrams(plan.Macros.CarbGrams) + " grams",
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
