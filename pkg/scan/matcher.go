// Package scan implements fixed byte-pattern matching over a bytesrc.Source
// and the selection policies that choose which raw matches an operation
// acts on.
package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
)

// ErrEmptyPattern is returned when a zero-length search pattern is given.
// An empty pattern would match at every offset, so it is rejected up front.
var ErrEmptyPattern = errors.New("empty search pattern")

// Matcher yields the offsets at which a fixed byte pattern occurs in a
// source, in strictly increasing order.
//
// Matches may overlap: after reporting a match at offset o the scan resumes
// at o+1, not o+len(pattern). Pattern "aa" against "aaa" therefore yields
// offsets 0 and 1. Overlap resolution, when it matters, is the rewrite
// engine's job.
//
// The scan is a naive re-seek-and-read window, O(n*m) worst case. That is a
// documented limitation for the file sizes this tool targets, not a defect.
type Matcher struct {
	src     *bytesrc.Source
	pattern []byte
	cursor  int64
	window  []byte
	done    bool
}

// NewMatcher creates a matcher for pattern over src, starting the scan at
// the absolute offset start (0 for the whole file). The pattern is copied.
func NewMatcher(src *bytesrc.Source, pattern []byte, start int64) (*Matcher, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &Matcher{
		src:     src,
		pattern: p,
		cursor:  start,
		window:  make([]byte, len(p)),
	}, nil
}

// Next returns the next match offset. ok is false when the scan is
// exhausted; running off the end of the source is a normal termination,
// not an error. After an I/O error the matcher is not resumable.
//
// Next moves the source's cursor; interleaving other reads on the same
// source between calls requires re-seeking.
func (m *Matcher) Next() (offset int64, ok bool, err error) {
	if m.done {
		return 0, false, nil
	}
	for {
		if err := m.src.SeekTo(m.cursor); err != nil {
			m.done = true
			return 0, false, err
		}
		if err := m.src.ReadExact(m.window); err != nil {
			m.done = true
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("read window at %d in %s: %w", m.cursor, m.src.Path(), err)
		}
		m.cursor++
		if bytes.Equal(m.window, m.pattern) {
			return m.cursor - 1, true, nil
		}
	}
}

// All drains the matcher and returns every remaining match offset in order.
func (m *Matcher) All() ([]int64, error) {
	var offsets []int64
	for {
		off, ok, err := m.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return offsets, nil
		}
		offsets = append(offsets, off)
	}
}
