// Package bytesrc provides a random-access, seekable view over the bytes of
// a file or an in-memory buffer. A Source bundles the open handle with the
// path it came from, so error messages and match reports can always name the
// file they refer to.
package bytesrc

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is an owned, seekable byte view. It holds at most one open OS
// handle, released by Close. A Source is not safe for concurrent use:
// callers reposition the cursor explicitly with SeekTo before reading.
type Source struct {
	r      io.ReadSeeker
	closer io.Closer
	path   string
}

// Open opens the file at path for reading.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Source{r: f, closer: f, path: path}, nil
}

// FromBytes wraps an in-memory byte slice. The slice is copied so later
// mutation by the caller cannot affect reads. The name is what Path reports
// and what error messages use.
func FromBytes(name string, data []byte) *Source {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Source{r: bytes.NewReader(buf), path: name}
}

// Path returns the path (or name) this source was opened from.
func (s *Source) Path() string {
	return s.path
}

// SeekTo positions the cursor at an absolute byte offset.
func (s *Source) SeekTo(offset int64) error {
	if _, err := s.r.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s to %d: %w", s.path, offset, err)
	}
	return nil
}

// ReadExact fills buf completely from the current cursor position. When
// fewer than len(buf) bytes remain it returns io.EOF or io.ErrUnexpectedEOF;
// callers treat those as end-of-data rather than failure.
func (s *Source) ReadExact(buf []byte) error {
	_, err := io.ReadFull(s.r, buf)
	return err
}

// ReadRemainder reads from the current cursor position through EOF.
func (s *Source) ReadRemainder() ([]byte, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// Len reports the total length of the source in bytes. The cursor position
// is preserved.
func (s *Source) Len() (int64, error) {
	cur, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("seek %s: %w", s.path, err)
	}
	end, err := s.r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("seek %s: %w", s.path, err)
	}
	if _, err := s.r.Seek(cur, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek %s: %w", s.path, err)
	}
	return end, nil
}

// Close releases the underlying handle. Closing a memory-backed source is a
// no-op. Close is idempotent only as far as the underlying handle allows;
// call it exactly once per Source.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
