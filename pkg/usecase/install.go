package usecase

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

// Install copies every tracked hook into the git hook directory. Existing
// destination files are overwritten and the source permission bits are
// carried over, so executable hook scripts stay executable. The first
// failed copy aborts the run: a partially installed hook set must not be
// mistaken for a complete one, so the remaining files are left alone and
// the failing file is reported.
func (uc *hookManager) Install(ctx context.Context, layout *model.Layout) (*model.InstallResult, error) {
	logger := ctxlog.From(ctx)

	hooks, excluded, cfg, err := uc.sourceHooks(layout)
	if err != nil {
		return nil, err
	}

	result := &model.InstallResult{Excluded: excluded}
	for _, name := range excluded {
		logger.Debug("hook excluded by config", "name", name)
	}

	for _, hook := range hooks {
		dst := filepath.Join(layout.HooksDir, hook.Name)

		if cfg.Install.Backup {
			if _, err := os.Stat(dst); err == nil {
				if err := os.Rename(dst, dst+types.BackupSuffix); err != nil {
					return nil, goerr.Wrap(err, "failed to back up existing hook",
						goerr.T(types.TagCopyFailed),
						goerr.V("file", hook.Name),
					)
				}
				result.BackedUp = append(result.BackedUp, hook.Name)
			}
		}

		if err := copyHook(hook.Path, dst, hook.Mode); err != nil {
			return nil, goerr.Wrap(err, "failed to install hook",
				goerr.T(types.TagCopyFailed),
				goerr.V("file", hook.Name),
				goerr.V("destination", dst),
			)
		}

		logger.Debug("installed hook",
			"name", hook.Name,
			"size_bytes", hook.Size,
			"executable", hook.Executable(),
		)
		result.Installed = append(result.Installed, hook)
	}

	logger.Info("hook installation complete",
		"installed", len(result.Installed),
		"excluded", len(result.Excluded),
		"source", layout.SourceDir,
		"destination", layout.HooksDir,
	)

	return result, nil
}

// copyHook writes src to dst, truncating any existing file. The chmod runs
// even when dst already existed, because O_CREATE only applies the mode to
// newly created files.
func copyHook(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, mode.Perm())
}
