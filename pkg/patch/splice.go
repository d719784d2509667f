package patch

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/binpatch/pkg/bytesrc"
)

// Splice produces the full output content for src with payload inserted at
// the absolute byte offset: src[0:offset], then payload, then the rest of
// src. No existing bytes are removed.
//
// An offset beyond the source length is an error (there are not enough
// bytes to satisfy the prefix copy); offset == length appends at EOF.
//
// Splice is the rewrite loop specialized to one selected offset with a
// zero-length pattern and an unconditional length change.
func Splice(src *bytesrc.Source, offset int64, payload []byte) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrOffsetOutOfRange, offset)
	}

	var out bytes.Buffer
	if err := copyRange(&out, src, 0, offset); err != nil {
		return nil, err
	}
	out.Write(payload)

	if err := src.SeekTo(offset); err != nil {
		return nil, err
	}
	rest, err := src.ReadRemainder()
	if err != nil {
		return nil, err
	}
	out.Write(rest)

	return out.Bytes(), nil
}
