package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
	"github.com/yaklabco/binpatch/pkg/scan"
)

// Locate expands opts.Paths and scans each resulting file for pattern.
//
// Files are processed strictly one at a time: each is opened, scanned and
// closed before the next is touched, so a run over a large tree holds at
// most one descriptor. One file's open or scan failure halts the whole
// batch; there is no partial-results-then-continue behavior.
func Locate(ctx context.Context, pattern []byte, opts Options) (*Result, error) {
	if len(pattern) == 0 {
		return nil, scan.ErrEmptyPattern
	}

	files, err := Expand(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileMatches, 0, len(files))}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("locate cancelled: %w", ctx.Err())
		default:
		}

		offsets, err := scanFile(path, pattern, opts.StartOffset)
		if err != nil {
			return nil, err
		}

		result.Files = append(result.Files, FileMatches{Path: path, Offsets: offsets})
		result.Stats.FilesScanned++
		if len(offsets) > 0 {
			result.Stats.FilesWithMatches++
			result.Stats.MatchesTotal += len(offsets)
		}
	}

	return result, nil
}

// scanFile opens path, collects every match offset, and closes the handle
// on all exit paths.
func scanFile(path string, pattern []byte, start int64) (_ []int64, err error) {
	src, err := bytesrc.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	m, err := scan.NewMatcher(src, pattern, start)
	if err != nil {
		return nil, err
	}
	return m.All()
}
