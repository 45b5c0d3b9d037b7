package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/tibvdm/hookset/pkg/cli/config"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var repoCfg config.Repo

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Show which tracked hooks are installed, stale, or missing",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			layout, err := usecase.ResolveLayout(repoCfg.Anchor)
			if err != nil {
				return err
			}

			report, err := usecase.NewHookManager().Status(ctx, layout)
			if err != nil {
				return err
			}

			printStatus(report)
			return nil
		},
	}
}

func printStatus(report *model.StatusReport) {
	if len(report.Hooks) == 0 {
		fmt.Println("no tracked hooks")
		return
	}

	for _, h := range report.Hooks {
		fmt.Printf("  %s  %s\n", stateLabel(h.State), h.Name)
	}

	installed, stale, missing := report.Counts()
	fmt.Printf("%d installed, %d stale, %d missing\n", installed, stale, missing)
}

func stateLabel(state model.HookState) string {
	label := fmt.Sprintf("%-9s", state)

	switch state {
	case model.StateInstalled:
		return color.GreenString(label)
	case model.StateStale:
		return color.YellowString(label)
	case model.StateMissing:
		return color.RedString(label)
	default:
		return label
	}
}
