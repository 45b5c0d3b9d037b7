package interfaces

import (
	"context"

	"github.com/tibvdm/hookset/pkg/domain/model"
)

// HookManager defines the operations on a repository's tracked hook set
type HookManager interface {
	// Install copies every tracked hook into the git hook directory,
	// overwriting existing copies and preserving permission bits
	Install(ctx context.Context, layout *model.Layout) (*model.InstallResult, error)

	// Status reports, per tracked hook, whether the installed copy is
	// current, stale, or missing
	Status(ctx context.Context, layout *model.Layout) (*model.StatusReport, error)

	// Uninstall removes the installed copies of the tracked hooks
	Uninstall(ctx context.Context, layout *model.Layout) (*model.UninstallResult, error)

	// Scaffold creates a starter hook source directory
	Scaffold(ctx context.Context, layout *model.Layout) error
}
