package scan_test

import (
	"testing"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
	"github.com/yaklabco/binpatch/pkg/scan"
)

func newMatcher(t *testing.T, data, pattern []byte) *scan.Matcher {
	t.Helper()

	m, err := scan.NewMatcher(bytesrc.FromBytes("mem", data), pattern, 0)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	return m
}

func TestSelectionAll(t *testing.T) {
	t.Parallel()

	m := newMatcher(t, []byte("aaaa"), []byte("aa"))
	offsets, err := scan.All().Apply(m)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(offsets) != 3 {
		t.Errorf("offsets = %v, want three overlapping matches", offsets)
	}
}

func TestSelectionNth(t *testing.T) {
	t.Parallel()

	t.Run("picks the k-th raw match", func(t *testing.T) {
		t.Parallel()

		m := newMatcher(t, []byte("aaaa"), []byte("aa"))
		offsets, err := scan.Nth(1).Apply(m)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if len(offsets) != 1 || offsets[0] != 1 {
			t.Errorf("offsets = %v, want [1]", offsets)
		}
	})

	t.Run("missing index yields empty result", func(t *testing.T) {
		t.Parallel()

		m := newMatcher(t, []byte("aaaa"), []byte("aa"))
		offsets, err := scan.Nth(7).Apply(m)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if len(offsets) != 0 {
			t.Errorf("offsets = %v, want none", offsets)
		}
	})
}

func TestSelectionString(t *testing.T) {
	t.Parallel()

	if got := scan.All().String(); got != "all" {
		t.Errorf("All().String() = %q", got)
	}
	if got := scan.Nth(2).String(); got != "nth=2" {
		t.Errorf("Nth(2).String() = %q", got)
	}
}
