// Package runner orchestrates locating a pattern across many files.
package runner

// Options controls multi-file locate behavior.
type Options struct {
	// Paths are the user-specified paths (files, or directories when
	// Recursive is set) to scan, in argument order.
	Paths []string

	// Recursive expands directories into the regular files beneath them.
	// Without it a directory argument is an error.
	Recursive bool

	// IgnoreGlobs are filepath.Match patterns (matched against the relative
	// path and the base name) that exclude files during directory expansion.
	IgnoreGlobs []string

	// StartOffset is the absolute offset scanning begins at in each file.
	StartOffset int64
}
