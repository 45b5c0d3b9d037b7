package usecase

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/model"
)

// Status compares every tracked hook with its installed copy. A hook is
// installed only when the destination is byte-identical and agrees on the
// executable bit; any difference makes it stale.
func (uc *hookManager) Status(ctx context.Context, layout *model.Layout) (*model.StatusReport, error) {
	logger := ctxlog.From(ctx)

	hooks, _, _, err := uc.sourceHooks(layout)
	if err != nil {
		return nil, err
	}

	report := &model.StatusReport{}
	for _, hook := range hooks {
		state, err := hookState(&hook, filepath.Join(layout.HooksDir, hook.Name))
		if err != nil {
			return nil, err
		}
		report.Hooks = append(report.Hooks, model.HookStatus{Name: hook.Name, State: state})
	}

	installed, stale, missing := report.Counts()
	logger.Debug("hook status collected",
		"installed", installed,
		"stale", stale,
		"missing", missing,
	)

	return report, nil
}

func hookState(hook *model.HookFile, dst string) (model.HookState, error) {
	info, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return model.StateMissing, nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to stat installed hook", goerr.V("file", hook.Name))
	}

	if executable(info.Mode()) != hook.Executable() {
		return model.StateStale, nil
	}

	want, err := os.ReadFile(hook.Path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read hook source file", goerr.V("file", hook.Name))
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read installed hook", goerr.V("file", hook.Name))
	}

	if !bytes.Equal(want, got) {
		return model.StateStale, nil
	}
	return model.StateInstalled, nil
}

func executable(mode fs.FileMode) bool {
	return mode.Perm()&0o111 != 0
}
