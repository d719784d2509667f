package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/binpatch/pkg/fsutil"
	"github.com/yaklabco/binpatch/pkg/runner"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	t.Run("keeps explicit files in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		b := filepath.Join(dir, "b.bin")
		a := filepath.Join(dir, "a.bin")
		writeFile(t, b, []byte("b"))
		writeFile(t, a, []byte("a"))

		files, err := runner.Expand(context.Background(), runner.Options{Paths: []string{b, a}})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(files) != 2 || files[0] != b || files[1] != a {
			t.Errorf("files = %v, want argument order preserved", files)
		}
	})

	t.Run("expands directories recursively and sorted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "sub", "deep", "c.bin"), []byte("c"))
		writeFile(t, filepath.Join(dir, "a.bin"), []byte("a"))
		writeFile(t, filepath.Join(dir, "sub", "b.bin"), []byte("b"))

		files, err := runner.Expand(context.Background(), runner.Options{
			Paths:     []string{dir},
			Recursive: true,
		})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		want := []string{
			filepath.Join(dir, "a.bin"),
			filepath.Join(dir, "sub", "b.bin"),
			filepath.Join(dir, "sub", "deep", "c.bin"),
		}
		if len(files) != len(want) {
			t.Fatalf("files = %v, want %v", files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("files = %v, want %v", files, want)
			}
		}
	})

	t.Run("directory without recursive fails", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Expand(context.Background(), runner.Options{Paths: []string{t.TempDir()}})
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("Expand() error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("missing path fails", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Expand(context.Background(), runner.Options{
			Paths: []string{filepath.Join(t.TempDir(), "missing")},
		})
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("Expand() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ignores symlinks during expansion", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "real.bin")
		writeFile(t, target, []byte("real"))
		if err := os.Symlink(target, filepath.Join(dir, "link.bin")); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		files, err := runner.Expand(context.Background(), runner.Options{
			Paths:     []string{dir},
			Recursive: true,
		})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(files) != 1 || files[0] != target {
			t.Errorf("files = %v, want only the real file", files)
		}
	})

	t.Run("applies ignore globs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "keep.bin"), []byte("k"))
		writeFile(t, filepath.Join(dir, "skip.tmp"), []byte("s"))

		files, err := runner.Expand(context.Background(), runner.Options{
			Paths:       []string{dir},
			Recursive:   true,
			IgnoreGlobs: []string{"*.tmp"},
		})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(files) != 1 || filepath.Base(files[0]) != "keep.bin" {
			t.Errorf("files = %v, want only keep.bin", files)
		}
	})

	t.Run("deduplicates repeated arguments", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "a.bin")
		writeFile(t, path, []byte("a"))

		files, err := runner.Expand(context.Background(), runner.Options{Paths: []string{path, path}})
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(files) != 1 {
			t.Errorf("files = %v, want one entry", files)
		}
	})
}
