package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/tibvdm/hookset/pkg/cli/config"
	"github.com/tibvdm/hookset/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application. The root command without a subcommand
// performs an install, so a bare `hookset` installs the tracked hooks.
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var repoCfg config.Repo
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "hookset",
		Usage:   "Install tracked hook scripts from .hooks into .git/hooks",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), repoCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runInstall(ctx, &repoCfg)
		},
		Commands: []*cli.Command{
			cmdInstall(),
			cmdStatus(),
			cmdUninstall(),
			cmdInit(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
