package main

import (
	"encoding/json"
	"fmt"
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/config"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"io"
	"os"
)

type calcFlags struct {
	age      int
	sex      string
	weight   float64
	height   float64
	activity string
	goal     string
	svgPath  string
	asJSON   bool
}

func (f calcFlags) profile() (nutrition.BiometricProfile, error) {
	sex, err := nutrition.ParseSex(f.sex)
	if err != nil {
		return nutrition.BiometricProfile{}, err
	}
	level, err := nutrition.ParseActivityLevel(f.activity)
	if err != nil {
		return nutrition.BiometricProfile{}, err
	}
	goal, err := nutrition.ParseGoal(f.goal)
	if err != nil {
		return nutrition.BiometricProfile{}, err
	}
	return nutrition.NewBiometricProfile(f.age, sex, f.weight, f.height, level, goal)
}

func calcCommand(load func() *config.Config) *cobra.Command {
	var f calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculates a plan from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			logger := initLogger(cfg, cmd.ErrOrStderr())

			profile, err := f.profile()
			if err != nil {
				return err
			}

			a, err := newApp(logger, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := a.planner.Calculate(cmd.Context(), profile)
			if err != nil {
				return err
			}

			if err := writeReport(cmd, plan, f.asJSON, render.TextOptions{}); err != nil {
				return err
			}
			return writeSVG(f.svgPath, plan, svgOptions(cfg))
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.age, "age", 0, "age in years")
	flags.StringVar(&f.sex, "sex", "", "male or female")
	flags.Float64Var(&f.weight, "weight", 0, "weight in kilograms")
	flags.Float64Var(&f.height, "height", 0, "height in centimeters")
	flags.StringVar(&f.activity, "activity", "", "sedentary, lightly_active, moderately_active, very_active or athletic")
	flags.StringVar(&f.goal, "goal", "", "lose, maintain or gain")
	flags.StringVar(&f.svgPath, "svg", "", "write a graphical summary to this file")
	flags.BoolVar(&f.asJSON, "json", false, "print the plan as JSON")
	for _, name := range []string{"age", "sex", "weight", "height", "activity", "goal"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

type planJSON struct {
	PlanID        string                     `json:"plan_id"`
	Profile       nutrition.BiometricProfile `json:"profile"`
	BMR           float64                    `json:"bmr"`
	DailyCalories nutrition.Calories         `json:"daily_calories"`
	Macros        nutrition.Macros           `json:"macros"`
}

func writeReport(cmd *cobra.Command, plan *nutrition.Plan, asJSON bool, opts render.TextOptions) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		return render.Text(cmd.Context(), out, plan, opts)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(planJSON{
		PlanID:        plan.PlanID,
		Profile:       plan.Profile,
		BMR:           plan.BMR,
		DailyCalories: plan.Calories,
		Macros:        plan.Macros,
	})
}

func writeSVG(path string, plan *nutrition.Plan, opts render.SVGOptions) (err error) {
	if path == "" {
		return nil
	}

	var f io.WriteCloser
	if f, err = os.Create(path); err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return render.SVG(f, plan, opts)
}
