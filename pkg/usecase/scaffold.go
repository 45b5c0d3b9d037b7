package usecase

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

//go:embed templates/pre-commit
var starterHook []byte

//go:embed templates/hooks.toml
var starterConfig []byte

// Scaffold creates the hook source directory with an executable starter
// pre-commit hook and a commented installer config. It refuses to touch an
// existing directory.
func (uc *hookManager) Scaffold(ctx context.Context, layout *model.Layout) error {
	logger := ctxlog.From(ctx)

	if _, err := os.Stat(layout.SourceDir); err == nil {
		return goerr.New("hook source directory already exists",
			goerr.V("path", layout.SourceDir),
		)
	}

	if err := os.MkdirAll(layout.SourceDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create hook source directory",
			goerr.V("path", layout.SourceDir),
		)
	}

	hookPath := filepath.Join(layout.SourceDir, "pre-commit")
	if err := os.WriteFile(hookPath, starterHook, 0o755); err != nil {
		return goerr.Wrap(err, "failed to write starter hook", goerr.V("path", hookPath))
	}

	cfgPath := filepath.Join(layout.SourceDir, types.ConfigFileName)
	if err := os.WriteFile(cfgPath, starterConfig, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write installer config", goerr.V("path", cfgPath))
	}

	logger.Info("hook source directory created",
		"path", layout.SourceDir,
		"starter_hook", hookPath,
	)

	return nil
}
