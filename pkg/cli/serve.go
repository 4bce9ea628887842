package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/cli/config"
	controller "github.com/secmon-lab/qmsboard/pkg/controller/http"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/service/metrics"
	"github.com/secmon-lab/qmsboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		slackCfg  config.Slack
		register  registerSource
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		register.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting qmsboard server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("register", register),
			)

			repo, seed, err := register.Open(ctx, true)
			if err != nil {
				return err
			}
			defer repo.Close()

			thresholds := seed.GetThresholds()
			riskOpts := []usecase.RiskOption{
				usecase.WithThresholds(thresholds),
				usecase.WithCellSelected(usecase.LogCellSelected(ctx)),
			}
			var serverOpts []controller.Option

			if serverCfg.Metrics {
				collector, err := metrics.New()
				if err != nil {
					return goerr.Wrap(err, "failed to create metrics collector")
				}
				riskOpts = append(riskOpts,
					usecase.WithCellSelected(collector.CellSelected),
					usecase.WithMatrixObserver(collector.ObserveMatrix),
				)
				serverOpts = append(serverOpts, controller.WithMetrics(collector))
			}

			notifier, err := slackCfg.ConfigureOptional(ctx)
			if err != nil {
				return err
			}
			if notifier != nil {
				riskOpts = append(riskOpts, usecase.WithCellSelected(notifier.CellSelectedFunc(ctx, thresholds)))
			}

			// Create use cases
			riskUC := usecase.NewRisk(repo, riskOpts...)
			useCases := controller.NewUseCases(
				riskUC,
				usecase.NewKPI(repo),
				usecase.NewDocument(repo),
				usecase.NewDashboard(repo, thresholds),
			)

			// Prime matrix observers with the initial register
			if _, err := riskUC.GetMatrix(ctx, model.RiskFilter{}); err != nil {
				return goerr.Wrap(err, "failed to build initial risk matrix")
			}

			// Create HTTP server
			server := controller.NewServer(ctx, serverCfg.Addr, useCases, serverOpts...)

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return goerr.Wrap(err, "HTTP server stopped", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
