package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/binpatch/pkg/runner"
)

const offsetSeparator = ", "

// FormatMatches renders a locate result: for each file, the path followed
// by a colon, then the match offsets in ascending order separated by ", ",
// wrapped to width. Files with zero matches are still listed, with an empty
// offset line. Entries are separated by a blank line.
func (s *Styles) FormatMatches(result *runner.Result, width int) string {
	var b strings.Builder
	for i, fm := range result.Files {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.FilePath.Render(fm.Path + ":"))
		b.WriteString("\n")
		for _, line := range wrapOffsets(fm.Offsets, width) {
			b.WriteString(s.Offsets.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatNothingFound renders the message shown when no file in the whole
// invocation had a match.
func (s *Styles) FormatNothingFound() string {
	return s.NoMatch.Render("Nothing found") + "\n"
}

// FormatReplaceSummary renders the applied-count line for the replace
// command.
func (s *Styles) FormatReplaceSummary(applied int) string {
	word := "matches"
	if applied == 1 {
		word = "match"
	}
	msg := fmt.Sprintf("Replaced %d %s successfully", applied, word)
	if applied == 0 {
		return s.Dim.Render(msg) + "\n"
	}
	return s.Success.Render(msg) + "\n"
}

// FormatInsertSummary renders the success line for the insert command.
func (s *Styles) FormatInsertSummary(payloadLen int, offset int64) string {
	word := "bytes"
	if payloadLen == 1 {
		word = "byte"
	}
	return s.Success.Render(fmt.Sprintf("Inserted %d %s at offset %d", payloadLen, word, offset)) + "\n"
}

// wrapOffsets joins offsets with ", " and wraps the result at item
// boundaries so no line exceeds width (single oversized items excepted).
// A broken line keeps its trailing comma to show the list continues.
// A file without matches yields one empty line.
func wrapOffsets(offsets []int64, width int) []string {
	if len(offsets) == 0 {
		return []string{""}
	}
	if width <= 0 {
		width = DefaultWidth
	}

	var lines []string
	var line strings.Builder
	for _, off := range offsets {
		item := strconv.FormatInt(off, 10)
		if line.Len() == 0 {
			line.WriteString(item)
			continue
		}
		// Reserve one column for the trailing comma of a broken line.
		if line.Len()+len(offsetSeparator)+len(item) >= width {
			lines = append(lines, line.String()+",")
			line.Reset()
			line.WriteString(item)
			continue
		}
		line.WriteString(offsetSeparator)
		line.WriteString(item)
	}
	lines = append(lines, line.String())
	return lines
}
