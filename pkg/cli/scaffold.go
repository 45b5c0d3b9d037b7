package cli

import (
	"context"
	"fmt"

	"github.com/tibvdm/hookset/pkg/cli/config"
	"github.com/tibvdm/hookset/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInit() *cli.Command {
	var repoCfg config.Repo

	return &cli.Command{
		Name:  "init",
		Usage: "Create a .hooks directory with a starter pre-commit hook",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			layout, err := usecase.ResolveLayout(repoCfg.Anchor)
			if err != nil {
				return err
			}

			if err := usecase.NewHookManager().Scaffold(ctx, layout); err != nil {
				return err
			}

			fmt.Printf("created %s\n", layout.SourceDir)
			return nil
		},
	}
}
