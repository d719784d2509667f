// Package fsutil provides file system utilities and safety primitives for
// binpatch: metadata reads with categorized errors and atomic destination
// writes.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory where a regular file
	// was expected.
	ErrIsDirectory = errors.New("path is a directory")
)

// Stat returns metadata for a regular file, mapping the common failure
// modes onto the package sentinels. The returned mode is used to preserve
// permissions when the rewritten content is written to its destination.
func Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return info, nil
}
