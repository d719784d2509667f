package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/yaklabco/binpatch/pkg/fsutil"
)

// Expand turns the user-supplied paths into a concrete list of regular
// files. Argument order is preserved; the files found under an expanded
// directory are sorted by path for deterministic output. Symlinks inside an
// expanded directory are ignored. Duplicates are dropped.
//
// A directory argument without opts.Recursive fails with
// fsutil.ErrIsDirectory.
func Expand(ctx context.Context, opts Options) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.Paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		info, err := os.Stat(inputPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", fsutil.ErrNotFound, inputPath)
			}
			if os.IsPermission(err) {
				return nil, fmt.Errorf("%w: %s", fsutil.ErrPermissionDenied, inputPath)
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(inputPath)
			continue
		}

		if !opts.Recursive {
			return nil, fmt.Errorf("%w: %s (use --recursive to expand directories)", fsutil.ErrIsDirectory, inputPath)
		}

		discovered, err := walkDirectory(ctx, inputPath, opts.IgnoreGlobs)
		if err != nil {
			return nil, err
		}
		sort.Strings(discovered)
		for _, f := range discovered {
			add(f)
		}
	}

	return files, nil
}

// walkDirectory collects the regular files under root. Symlinks are skipped
// whether they point at files or directories, so expansion never escapes the
// tree it was asked to scan.
func walkDirectory(ctx context.Context, root string, ignoreGlobs []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			return walkErr
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if matchesIgnorePattern(relPath, ignoreGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		if matchesIgnorePattern(relPath, ignoreGlobs) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesIgnorePattern checks relPath against the ignore globs, matching
// both the relative path and the base name.
func matchesIgnorePattern(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}
