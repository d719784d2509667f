package cli

import (
	"errors"
	"os"

	"github.com/yaklabco/binpatch/internal/configloader"
	"github.com/yaklabco/binpatch/pkg/fsutil"
	"github.com/yaklabco/binpatch/pkg/patch"
	"github.com/yaklabco/binpatch/pkg/scan"
)

// Exit codes for binpatch, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure.
	ExitFailure = 1

	// ExitUsage indicates invalid command-line usage: an empty pattern, a
	// malformed offset or hex argument, or a misconfigured substitution.
	ExitUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors, including out-of-range
	// offsets.
	ExitIOError = 74
)

// ExitCodeFromError maps an error from command execution to a process exit
// code using the sentinel taxonomy of the core packages.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, scan.ErrEmptyPattern),
		errors.Is(err, patch.ErrReplacementTooLong),
		errors.Is(err, ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, configloader.ErrConfig):
		return ExitConfigError
	case errors.Is(err, patch.ErrOffsetOutOfRange),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIOError
	default:
		return ExitFailure
	}
}
