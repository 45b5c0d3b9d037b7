package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify installer failures so the entrypoint can map them to
// distinct process exit codes.
var (
	// TagSourceMissing marks a missing .hooks directory
	TagSourceMissing = goerr.NewTag("source_missing")

	// TagDestinationMissing marks a missing .git/hooks directory
	TagDestinationMissing = goerr.NewTag("destination_missing")

	// TagCopyFailed marks a failed copy of an individual hook file
	TagCopyFailed = goerr.NewTag("copy_failed")
)

// ExitCode maps an error to the process exit code: 0 for nil, 2 for a
// failed copy, 1 for everything else (including the missing-directory cases).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case goerr.HasTag(err, TagCopyFailed):
		return 2
	default:
		return 1
	}
}
