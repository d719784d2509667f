package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument wraps positional argument parse failures so they map
// to the usage exit code.
var ErrInvalidArgument = errors.New("invalid argument")

// decodeBytes turns a positional byte-string argument into raw bytes. In
// hex mode the argument is a hex string (an optional 0x prefix and interior
// spaces are accepted); otherwise the argument's bytes are used verbatim.
func decodeBytes(hexMode bool, arg string) ([]byte, error) {
	if !hexMode {
		return []byte(arg), nil
	}
	cleaned := strings.ReplaceAll(strings.TrimPrefix(arg, "0x"), " ", "")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a hex string: %w", ErrInvalidArgument, arg, err)
	}
	return data, nil
}

// parseOffset parses a non-negative byte offset argument.
func parseOffset(arg string) (int64, error) {
	offset, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a byte offset: %w", ErrInvalidArgument, arg, err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidArgument, offset)
	}
	return offset, nil
}
