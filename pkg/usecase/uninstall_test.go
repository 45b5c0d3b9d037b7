package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tibvdm/hookset/pkg/usecase"
)

func TestUninstall_RemovesOnlyTrackedHooks(t *testing.T) {
	ctx := context.Background()
	layout := setupRepo(t)
	mgr := usecase.NewHookManager()

	writeHook(t, layout, "pre-commit", "#!/bin/sh\n", 0o755)
	writeHook(t, layout, "commit-msg", "#!/bin/sh\n", 0o755)

	_, err := mgr.Install(ctx, layout)
	gt.NoError(t, err)

	// A hook the user installed by hand must survive
	foreign := filepath.Join(layout.HooksDir, "post-checkout")
	gt.NoError(t, os.WriteFile(foreign, []byte("#!/bin/sh\n"), 0o755))

	result, err := mgr.Uninstall(ctx, layout)
	gt.NoError(t, err)
	gt.Equal(t, result.Removed, []string{"commit-msg", "pre-commit"})
	gt.Equal(t, len(result.Absent), 0)

	_, statErr := os.Stat(filepath.Join(layout.HooksDir, "pre-commit"))
	gt.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(foreign)
	gt.NoError(t, statErr)
}

func TestUninstall_AbsentHooksReported(t *testing.T) {
	ctx := context.Background()
	layout := setupRepo(t)

	writeHook(t, layout, "pre-commit", "#!/bin/sh\n", 0o755)

	result, err := usecase.NewHookManager().Uninstall(ctx, layout)
	gt.NoError(t, err)
	gt.Equal(t, len(result.Removed), 0)
	gt.Equal(t, result.Absent, []string{"pre-commit"})
}
