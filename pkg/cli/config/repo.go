package config

import "github.com/urfave/cli/v3"

// Repo holds repository location configuration
type Repo struct {
	Anchor string
}

// Flags returns CLI flags for repository configuration
func (c *Repo) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "anchor",
			Aliases:     []string{"C"},
			Usage:       "Repository root to anchor paths to (default: directory of the binary)",
			Destination: &c.Anchor,
			Sources:     cli.EnvVars("HOOKSET_ANCHOR"),
		},
	}
}
