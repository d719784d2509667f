package runner_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yaklabco/binpatch/pkg/fsutil"
	"github.com/yaklabco/binpatch/pkg/runner"
	"github.com/yaklabco/binpatch/pkg/scan"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("reports offsets per file in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := filepath.Join(dir, "a.bin")
		b := filepath.Join(dir, "b.bin")
		writeFile(t, a, []byte("xxabxxab"))
		writeFile(t, b, []byte("no hits here"))

		result, err := runner.Locate(context.Background(), []byte("ab"), runner.Options{
			Paths: []string{a, b},
		})
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}

		if len(result.Files) != 2 {
			t.Fatalf("Files = %v, want two entries", result.Files)
		}
		if result.Files[0].Path != a || len(result.Files[0].Offsets) != 2 {
			t.Errorf("first entry = %+v, want two matches in a.bin", result.Files[0])
		}
		if result.Files[1].Path != b || len(result.Files[1].Offsets) != 0 {
			t.Errorf("second entry = %+v, want zero matches still listed", result.Files[1])
		}

		if result.Stats.FilesScanned != 2 {
			t.Errorf("FilesScanned = %d, want 2", result.Stats.FilesScanned)
		}
		if result.Stats.FilesWithMatches != 1 {
			t.Errorf("FilesWithMatches = %d, want 1", result.Stats.FilesWithMatches)
		}
		if result.Stats.MatchesTotal != 2 {
			t.Errorf("MatchesTotal = %d, want 2", result.Stats.MatchesTotal)
		}
	})

	t.Run("empty result when nothing matches", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "a.bin")
		writeFile(t, path, []byte("nothing"))

		result, err := runner.Locate(context.Background(), []byte("zzz"), runner.Options{
			Paths: []string{path},
		})
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if !result.Empty() {
			t.Error("Empty() = false, want true")
		}
	})

	t.Run("one missing file halts the batch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := filepath.Join(dir, "a.bin")
		writeFile(t, a, []byte("ab"))

		_, err := runner.Locate(context.Background(), []byte("ab"), runner.Options{
			Paths: []string{a, filepath.Join(dir, "missing.bin")},
		})
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("Locate() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Locate(context.Background(), nil, runner.Options{Paths: []string{"x"}})
		if !errors.Is(err, scan.ErrEmptyPattern) {
			t.Errorf("Locate() error = %v, want ErrEmptyPattern", err)
		}
	})

	t.Run("honors start offset", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "a.bin")
		writeFile(t, path, []byte("ababab"))

		result, err := runner.Locate(context.Background(), []byte("ab"), runner.Options{
			Paths:       []string{path},
			StartOffset: 3,
		})
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		offsets := result.Files[0].Offsets
		if len(offsets) != 1 || offsets[0] != 4 {
			t.Errorf("offsets = %v, want [4]", offsets)
		}
	})
}
