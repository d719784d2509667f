// Package patch turns selected match offsets into new file contents. It
// implements the rewrite engine (substitute matched regions under a
// size-preserving or size-changing policy) and the splice engine (insert
// bytes at an explicit offset).
package patch

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrReplacementTooLong indicates a replacement longer than the pattern
	// while length change is disallowed. This is a configuration error and
	// is rejected before any output is produced.
	ErrReplacementTooLong = errors.New("replacement longer than pattern while length change is disallowed")

	// ErrOffsetOutOfRange indicates a requested offset or copy range beyond
	// the end of the input. Out-of-range offsets fail, they are never
	// clamped.
	ErrOffsetOutOfRange = errors.New("offset beyond end of input")
)

// Substitution describes how each matched region is rewritten.
type Substitution struct {
	// Replacement is emitted in place of the matched bytes.
	Replacement []byte

	// FillByte pads the region back to pattern length when Replacement is
	// shorter and length change is disallowed.
	FillByte byte

	// AllowLengthChange permits the output length to differ from the input
	// length. When false, Replacement must not be longer than the pattern.
	AllowLengthChange bool
}

// Validate checks the policy against the pattern length it will be applied
// with. It must pass before any byte is written to a destination.
func (s Substitution) Validate(patternLen int) error {
	if !s.AllowLengthChange && len(s.Replacement) > patternLen {
		return fmt.Errorf("%w: replacement is %d bytes, pattern is %d bytes",
			ErrReplacementTooLong, len(s.Replacement), patternLen)
	}
	return nil
}

// Rewrite produces the full output content for src with the selected match
// offsets substituted according to sub, and reports how many offsets were
// actually applied.
//
// Offsets must be in increasing order (the matcher produces them that way).
// An offset that falls inside a region already consumed by a previous
// substitution is skipped: matches may overlap, but a byte region is
// rewritten at most once. Unselected and skipped regions are copied
// verbatim.
//
// For a fixed-length policy the output is exactly as long as the input;
// for a length-changing policy it is longer or shorter by
// applied * (len(Replacement) - patternLen).
func Rewrite(src *bytesrc.Source, selected []int64, patternLen int, sub Substitution) ([]byte, int, error) {
	if err := sub.Validate(patternLen); err != nil {
		return nil, 0, err
	}

	pad := 0
	if !sub.AllowLengthChange {
		pad = patternLen - len(sub.Replacement)
	}

	length, err := src.Len()
	if err != nil {
		return nil, 0, err
	}

	var out bytes.Buffer
	var cursor int64
	applied := 0

	for _, off := range selected {
		if off < cursor {
			// Overlaps a region already rewritten.
			continue
		}
		if end := off + int64(patternLen); end > length {
			return nil, 0, fmt.Errorf("%w: region [%d, %d) of %s", ErrOffsetOutOfRange, off, end, src.Path())
		}
		if err := copyRange(&out, src, cursor, off); err != nil {
			return nil, 0, err
		}
		out.Write(sub.Replacement)
		out.Write(bytes.Repeat([]byte{sub.FillByte}, pad))
		cursor = off + int64(patternLen)
		applied++
	}

	if err := src.SeekTo(cursor); err != nil {
		return nil, 0, err
	}
	rest, err := src.ReadRemainder()
	if err != nil {
		return nil, 0, err
	}
	out.Write(rest)

	return out.Bytes(), applied, nil
}

// copyRange copies src[from:to) into dst. A short read means the range runs
// past EOF, reported as ErrOffsetOutOfRange.
func copyRange(dst *bytes.Buffer, src *bytesrc.Source, from, to int64) error {
	if to == from {
		return nil
	}
	if err := src.SeekTo(from); err != nil {
		return err
	}
	buf := make([]byte, to-from)
	if err := src.ReadExact(buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: need bytes [%d, %d) of %s", ErrOffsetOutOfRange, from, to, src.Path())
		}
		return fmt.Errorf("read %s: %w", src.Path(), err)
	}
	dst.Write(buf)
	return nil
}
