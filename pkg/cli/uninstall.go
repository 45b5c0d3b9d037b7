package cli

import (
	"context"
	"fmt"

	"github.com/tibvdm/hookset/pkg/cli/config"
	"github.com/tibvdm/hookset/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdUninstall() *cli.Command {
	var repoCfg config.Repo

	return &cli.Command{
		Name:  "uninstall",
		Usage: "Remove the installed copies of the tracked hooks from .git/hooks",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			layout, err := usecase.ResolveLayout(repoCfg.Anchor)
			if err != nil {
				return err
			}

			result, err := usecase.NewHookManager().Uninstall(ctx, layout)
			if err != nil {
				return err
			}

			word := "files"
			if len(result.Removed) == 1 {
				word = "file"
			}
			fmt.Printf("%d %s removed\n", len(result.Removed), word)
			return nil
		},
	}
}
