package main

import (
	"github.com/burenotti/go_nutrition/internal/adapter/console"
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func promptCommand(load func() *config.Config) *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Asks for biometric data interactively and prints a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			logger := initLogger(cfg, cmd.ErrOrStderr())

			a, err := newApp(logger, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			prompter := console.NewPrompter(
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				console.MaxAttempts(cfg.Console.MaxAttempts),
				console.Logger(logger),
			)
			profile, err := prompter.ReadProfile(cmd.Context())
			if err != nil {
				return err
			}

			plan, err := a.planner.Calculate(cmd.Context(), profile)
			if err != nil {
				return err
			}

			opts := render.TextOptions{LineDelay: cfg.Console.LineDelay}
			if err := writeReport(cmd, plan, false, opts); err != nil {
				return err
			}
			return writeSVG(svgPath, plan, svgOptions(cfg))
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "write a graphical summary to this file")
	return cmd
}
