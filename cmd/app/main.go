package main

import (
	"github.com/burenotti/go_nutrition/internal/adapter/metrics"
	"github.com/burenotti/go_nutrition/internal/adapter/render"
	"github.com/burenotti/go_nutrition/internal/app/messagebus"
	"github.com/burenotti/go_nutrition/internal/app/planner"
	"github.com/burenotti/go_nutrition/internal/config"
	"github.com/burenotti/go_nutrition/internal/domain/nutrition"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "nutrition",
		Short:         "Daily calorie and macronutrient calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	load := func() *config.Config {
		return config.MustLoad(configPath)
	}

	rootCmd.AddCommand(
		serveCommand(load),
		calcCommand(load),
		promptCommand(load),
	)
	return rootCmd
}

func initLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}

type app struct {
	logger  *slog.Logger
	bus     *messagebus.MessageBus
	planner *planner.Service
}

// newApp wires the planner to the bus and registers metrics handlers on reg.
func newApp(logger *slog.Logger, reg prometheus.Registerer) (*app, error) {
	bus := messagebus.New(logger)

	collector, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}
	bus.Register(nutrition.EventPlanCalculated, collector.HandlePlanCalculated)
	bus.Register(nutrition.EventPlanRejected, collector.HandlePlanRejected)

	return &app{
		logger:  logger,
		bus:     bus,
		planner: planner.New(logger, bus),
	}, nil
}

func (a *app) Close() {
	a.bus.Close()
}

func svgOptions(cfg *config.Config) render.SVGOptions {
	return render.SVGOptions{
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		Background: cfg.Render.Background,
		FontFamily: cfg.Render.FontFamily,
		FontSize:   cfg.Render.FontSize,
	}
}
