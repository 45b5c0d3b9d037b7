package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/model"
)

// Uninstall removes the installed copies of the tracked hooks. Only files
// whose names appear in the source directory are touched; hooks the user
// placed in .git/hooks by other means stay.
func (uc *hookManager) Uninstall(ctx context.Context, layout *model.Layout) (*model.UninstallResult, error) {
	logger := ctxlog.From(ctx)

	hooks, _, _, err := uc.sourceHooks(layout)
	if err != nil {
		return nil, err
	}

	result := &model.UninstallResult{}
	for _, hook := range hooks {
		dst := filepath.Join(layout.HooksDir, hook.Name)

		err := os.Remove(dst)
		if errors.Is(err, fs.ErrNotExist) {
			result.Absent = append(result.Absent, hook.Name)
			continue
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to remove installed hook",
				goerr.V("file", hook.Name),
			)
		}

		logger.Debug("removed hook", "name", hook.Name)
		result.Removed = append(result.Removed, hook.Name)
	}

	logger.Info("hook removal complete",
		"removed", len(result.Removed),
		"destination", layout.HooksDir,
	)

	return result, nil
}
