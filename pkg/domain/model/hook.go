package model

import "io/fs"

// HookFile represents a single hook script found in the source directory
type HookFile struct {
	Name string      // File name, also the hook name (e.g. "pre-commit")
	Path string      // Absolute path of the source file
	Size int64       // Size in bytes
	Mode fs.FileMode // Source file mode; permission bits carry over on install
}

// Executable reports whether any execute bit is set on the source file
func (f *HookFile) Executable() bool {
	return f.Mode.Perm()&0o111 != 0
}

// InstallResult summarizes one install run
type InstallResult struct {
	Installed []HookFile // Hooks copied into the destination, in install order
	BackedUp  []string   // Hook names moved aside before overwrite
	Excluded  []string   // Hook names skipped by config exclude patterns
}

// HookState describes how a source hook relates to its installed copy
type HookState string

const (
	// StateInstalled means the destination copy is byte-identical and the
	// executable bit matches
	StateInstalled HookState = "installed"
	// StateStale means a destination copy exists but differs from the source
	StateStale HookState = "stale"
	// StateMissing means no destination copy exists
	StateMissing HookState = "missing"
)

// HookStatus is the state of a single hook
type HookStatus struct {
	Name  string
	State HookState
}

// StatusReport lists the state of every tracked hook
type StatusReport struct {
	Hooks []HookStatus
}

// Counts returns the number of hooks per state
func (r *StatusReport) Counts() (installed, stale, missing int) {
	for _, h := range r.Hooks {
		switch h.State {
		case StateInstalled:
			installed++
		case StateStale:
			stale++
		case StateMissing:
			missing++
		}
	}
	return installed, stale, missing
}

// UninstallResult summarizes one uninstall run
type UninstallResult struct {
	Removed []string // Hook names removed from the destination
	Absent  []string // Tracked hooks that had no installed copy
}
