package bytesrc_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("reads file content through the cursor", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "data.bin")
		if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		src, err := bytesrc.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer src.Close()

		if src.Path() != path {
			t.Errorf("Path() = %q, want %q", src.Path(), path)
		}

		buf := make([]byte, 5)
		if err := src.SeekTo(6); err != nil {
			t.Fatalf("SeekTo() error = %v", err)
		}
		if err := src.ReadExact(buf); err != nil {
			t.Fatalf("ReadExact() error = %v", err)
		}
		if string(buf) != "world" {
			t.Errorf("ReadExact() = %q, want %q", buf, "world")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := bytesrc.Open(filepath.Join(t.TempDir(), "missing.bin"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("copies the input slice", func(t *testing.T) {
		t.Parallel()

		data := []byte("abcdef")
		src := bytesrc.FromBytes("mem", data)
		data[0] = 'X'

		buf := make([]byte, 1)
		if err := src.ReadExact(buf); err != nil {
			t.Fatalf("ReadExact() error = %v", err)
		}
		if buf[0] != 'a' {
			t.Errorf("read %q after caller mutation, want %q", buf[0], byte('a'))
		}
	})

	t.Run("close is a no-op", func(t *testing.T) {
		t.Parallel()

		src := bytesrc.FromBytes("mem", []byte("x"))
		if err := src.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
}

func TestReadExactShortRead(t *testing.T) {
	t.Parallel()

	src := bytesrc.FromBytes("mem", []byte("abc"))
	if err := src.SeekTo(2); err != nil {
		t.Fatalf("SeekTo() error = %v", err)
	}

	buf := make([]byte, 2)
	err := src.ReadExact(buf)
	if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		t.Errorf("ReadExact() error = %v, want EOF-style error", err)
	}
}

func TestReadRemainder(t *testing.T) {
	t.Parallel()

	src := bytesrc.FromBytes("mem", []byte("abcdef"))
	if err := src.SeekTo(4); err != nil {
		t.Fatalf("SeekTo() error = %v", err)
	}

	rest, err := src.ReadRemainder()
	if err != nil {
		t.Fatalf("ReadRemainder() error = %v", err)
	}
	if string(rest) != "ef" {
		t.Errorf("ReadRemainder() = %q, want %q", rest, "ef")
	}
}

func TestLen(t *testing.T) {
	t.Parallel()

	src := bytesrc.FromBytes("mem", []byte("abcdef"))
	if err := src.SeekTo(3); err != nil {
		t.Fatalf("SeekTo() error = %v", err)
	}

	n, err := src.Len()
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Len() = %d, want 6", n)
	}

	// Cursor must be preserved.
	rest, err := src.ReadRemainder()
	if err != nil {
		t.Fatalf("ReadRemainder() error = %v", err)
	}
	if string(rest) != "def" {
		t.Errorf("cursor moved by Len(): remainder = %q, want %q", rest, "def")
	}
}
