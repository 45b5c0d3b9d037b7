package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tibvdm/hookset/pkg/domain/model"
	"github.com/tibvdm/hookset/pkg/usecase"
)

func TestStatus_ReportsAllStates(t *testing.T) {
	ctx := context.Background()
	layout := setupRepo(t)
	mgr := usecase.NewHookManager()

	writeHook(t, layout, "pre-commit", "#!/bin/sh\necho ok\n", 0o755)
	writeHook(t, layout, "commit-msg", "#!/bin/sh\n", 0o755)
	writeHook(t, layout, "pre-push", "#!/bin/sh\n", 0o755)

	_, err := mgr.Install(ctx, layout)
	gt.NoError(t, err)

	// commit-msg drifts, pre-push disappears
	gt.NoError(t, os.WriteFile(
		filepath.Join(layout.HooksDir, "commit-msg"),
		[]byte("#!/bin/sh\necho drifted\n"),
		0o755,
	))
	gt.NoError(t, os.Remove(filepath.Join(layout.HooksDir, "pre-push")))

	report, err := mgr.Status(ctx, layout)
	gt.NoError(t, err)
	gt.Equal(t, report.Hooks, []model.HookStatus{
		{Name: "commit-msg", State: model.StateStale},
		{Name: "pre-commit", State: model.StateInstalled},
		{Name: "pre-push", State: model.StateMissing},
	})

	installed, stale, missing := report.Counts()
	gt.Equal(t, installed, 1)
	gt.Equal(t, stale, 1)
	gt.Equal(t, missing, 1)
}

func TestStatus_ExecBitMismatchIsStale(t *testing.T) {
	ctx := context.Background()
	layout := setupRepo(t)
	mgr := usecase.NewHookManager()

	writeHook(t, layout, "pre-commit", "#!/bin/sh\n", 0o755)

	_, err := mgr.Install(ctx, layout)
	gt.NoError(t, err)

	// Same bytes, executable bit stripped
	gt.NoError(t, os.Chmod(filepath.Join(layout.HooksDir, "pre-commit"), 0o644))

	report, err := mgr.Status(ctx, layout)
	gt.NoError(t, err)
	gt.Equal(t, len(report.Hooks), 1)
	gt.Equal(t, report.Hooks[0].State, model.StateStale)
}

func TestStatus_EmptySource(t *testing.T) {
	ctx := context.Background()
	layout := setupRepo(t)

	report, err := usecase.NewHookManager().Status(ctx, layout)
	gt.NoError(t, err)
	gt.Equal(t, len(report.Hooks), 0)
}
