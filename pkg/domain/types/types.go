package types

// Version is the application version. Overridden at release build time via
// -ldflags "-X github.com/tibvdm/hookset/pkg/domain/types.Version=...".
var Version = "v0.1.0"

// Fixed names of the filesystem layout the installer operates on.
const (
	// HooksDirName is the tracked hook directory at the repository root
	HooksDirName = ".hooks"

	// GitDirName is the git metadata directory
	GitDirName = ".git"

	// GitHooksDirName is the hook directory inside GitDirName
	GitHooksDirName = "hooks"

	// ConfigFileName is the optional installer config inside HooksDirName.
	// It is configuration, not a hook, and is never installed.
	ConfigFileName = "hooks.toml"

	// BackupSuffix is appended to a hook that is moved aside before overwrite
	BackupSuffix = ".bak"
)
