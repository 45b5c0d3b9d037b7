package usecase

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/domain/types"
)

// ResolveLayout computes the repository layout for one invocation. With an
// empty anchor the parent directory of the running binary is used, resolved
// through symlinks, so the result does not depend on the caller's working
// directory. A non-empty anchor overrides that for binaries installed
// outside the repository (e.g. on PATH).
func ResolveLayout(anchor string) (*model.Layout, error) {
	if anchor == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to locate running binary")
		}

		resolved, err := filepath.EvalSymlinks(exe)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve binary path", goerr.V("path", exe))
		}

		anchor = filepath.Dir(resolved)
	}

	abs, err := filepath.Abs(anchor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve anchor path", goerr.V("path", anchor))
	}

	return &model.Layout{
		Anchor:    abs,
		SourceDir: filepath.Join(abs, types.HooksDirName),
		HooksDir:  filepath.Join(abs, types.GitDirName, types.GitHooksDirName),
	}, nil
}
