package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Version is overwritten at build time with -ldflags "-X ...cli.Version=..."
var Version = "0.1.0"

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    config.ServiceName,
		Usage:   "Hospital quality management dashboard: risk matrix, KPIs and documents",
		Version: Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure(os.Stdout, Version)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to configure logger", goerr.V("logger", loggerCfg))
			}

			slog.SetDefault(logger)
			logger.Debug("qmsboard starting", "args", c.Args().Slice(), "logger", loggerCfg)
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdMatrix(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
