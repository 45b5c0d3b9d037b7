package main

import (
	"context"
	"os"

	"github.com/tibvdm/hookset/pkg/cli"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
