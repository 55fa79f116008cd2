package main

import (
	"context"
	"errors"
	"github.com/burenotti/go_nutrition/internal/adapter/api"
	"github.com/burenotti/go_nutrition/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func serveCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			logger := initLogger(cfg, os.Stdout)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			a, err := newApp(logger, reg)
			if err != nil {
				return err
			}
			defer a.Close()

			server := api.NewServer(
				api.Addr(cfg.Server.Host, cfg.Server.Port),
				api.Logger(logger),
				api.PlannerService(a.planner),
				api.MetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
				api.SVGOptions(svgOptions(cfg)),
				api.ServerTimeouts(api.Timeouts{
					Read:       cfg.Server.ReadTimeout,
					Write:      cfg.Server.WriteTimeout,
					Idle:       cfg.Server.IdleTimeout,
					ReadHeader: cfg.Server.ReadHeaderTimeout,
				}),
				api.MaxHeaderBytes(cfg.Server.MaxHeaderBytes),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error)

			go func() {
				defer close(errCh)
				logger.Info("server started", "host", cfg.Server.Host, "port", cfg.Server.Port)
				errCh <- server.Start()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error("server was not shutdown gracefully", "error", err)
				}
			case err := <-errCh:
				if err != nil {
					if !errors.Is(err, http.ErrServerClosed) {
						logger.Error("server closed with unexpected error", "error", err)
						return err
					}
				}
			}
			logger.Info("server shutdown")
			return nil
		},
	}
}
