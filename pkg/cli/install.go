package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/tibvdm/hookset/pkg/cli/config"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInstall() *cli.Command {
	var repoCfg config.Repo

	return &cli.Command{
		Name:    "install",
		Aliases: []string{"i"},
		Usage:   "Copy hook scripts from .hooks into .git/hooks",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runInstall(ctx, &repoCfg)
		},
	}
}

// runInstall backs both `hookset install` and the bare root invocation
func runInstall(ctx context.Context, repoCfg *config.Repo) error {
	logger := ctxlog.From(ctx)

	layout, err := usecase.ResolveLayout(repoCfg.Anchor)
	if err != nil {
		return err
	}

	logger.Debug("resolved repository layout",
		"anchor", layout.Anchor,
		"source", layout.SourceDir,
		"destination", layout.HooksDir,
	)

	result, err := usecase.NewHookManager().Install(ctx, layout)
	if err != nil {
		return err
	}

	fmt.Println(installSummary(result))
	return nil
}

func installSummary(result *model.InstallResult) string {
	word := "files"
	if len(result.Installed) == 1 {
		word = "file"
	}

	summary := fmt.Sprintf("%d %s installed", len(result.Installed), word)
	if n := len(result.BackedUp); n > 0 {
		summary += fmt.Sprintf(", %d backed up", n)
	}
	if n := len(result.Excluded); n > 0 {
		summary += fmt.Sprintf(", %d excluded", n)
	}

	return color.GreenString(summary)
}
