package usecase

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/interfaces"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

type hookManager struct{}

// NewHookManager creates a HookManager operating on the local filesystem
func NewHookManager() interfaces.HookManager {
	return &hookManager{}
}

// sourceHooks validates the layout and returns the tracked hook files in
// name order, the names dropped by config exclude patterns, and the
// installer config found next to the hooks. The source and destination
// directories are both checked before anything is touched, so a missing
// directory never leaves a partial install behind.
func (uc *hookManager) sourceHooks(layout *model.Layout) ([]model.HookFile, []string, *installConfig, error) {
	if !isDir(layout.SourceDir) {
		return nil, nil, nil, goerr.New("hook source directory not found",
			goerr.T(types.TagSourceMissing),
			goerr.V("path", layout.SourceDir),
		)
	}
	if !isDir(layout.HooksDir) {
		return nil, nil, nil, goerr.New("git hook directory not found, run `git init` first",
			goerr.T(types.TagDestinationMissing),
			goerr.V("path", layout.HooksDir),
		)
	}

	cfg, err := loadConfig(layout.SourceDir)
	if err != nil {
		return nil, nil, nil, err
	}

	entries, err := os.ReadDir(layout.SourceDir)
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to read hook source directory",
			goerr.V("path", layout.SourceDir),
		)
	}

	var hooks []model.HookFile
	var excluded []string
	for _, entry := range entries {
		// Flat copy only: subdirectories and other non-regular entries
		// are not hook scripts.
		if !entry.Type().IsRegular() {
			continue
		}
		if entry.Name() == types.ConfigFileName {
			continue
		}
		if cfg.excluded(entry.Name()) {
			excluded = append(excluded, entry.Name())
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, nil, nil, goerr.Wrap(err, "failed to stat hook source file",
				goerr.V("file", entry.Name()),
			)
		}

		hooks = append(hooks, model.HookFile{
			Name: entry.Name(),
			Path: filepath.Join(layout.SourceDir, entry.Name()),
			Size: info.Size(),
			Mode: info.Mode(),
		})
	}

	sort.Slice(hooks, func(i, j int) bool { return hooks[i].Name < hooks[j].Name })

	return hooks, excluded, cfg, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
