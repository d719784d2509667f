package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the writer is not a terminal or its size cannot
// be determined.
const DefaultWidth = 80

// DetectWidth returns the terminal width of the writer, or DefaultWidth for
// non-terminal writers. Long offset lists are wrapped to this width.
func DetectWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth
	}
	if !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
