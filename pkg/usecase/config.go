package usecase

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

// installConfig is the optional hooks.toml inside the hook source directory.
// An absent file yields the zero config: every regular file is installed,
// nothing is backed up.
type installConfig struct {
	Install struct {
		Exclude []string `toml:"exclude"`
		Backup  bool     `toml:"backup"`
	} `toml:"install"`

	exclude []glob.Glob
}

func loadConfig(sourceDir string) (*installConfig, error) {
	cfg := &installConfig{}

	path := filepath.Join(sourceDir, types.ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read installer config", goerr.V("path", path))
	}

	// A malformed config is fatal: ignoring it could install hooks the
	// user meant to exclude.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse installer config", goerr.V("path", path))
	}

	for _, pattern := range cfg.Install.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid exclude pattern",
				goerr.V("path", path),
				goerr.V("pattern", pattern),
			)
		}
		cfg.exclude = append(cfg.exclude, g)
	}

	return cfg, nil
}

// excluded matches a hook file name against the exclude patterns
func (c *installConfig) excluded(name string) bool {
	for _, g := range c.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}
