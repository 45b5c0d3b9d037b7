package model

// Layout holds the filesystem locations one installer invocation operates on.
// All paths are absolute. SourceDir and HooksDir are derived from Anchor, so
// the tool behaves the same no matter where it is invoked from.
type Layout struct {
	Anchor    string // Repository root the paths are anchored to
	SourceDir string // Tracked hook scripts (<anchor>/.hooks)
	HooksDir  string // Git hook destination (<anchor>/.git/hooks)
}
