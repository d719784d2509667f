package runner

// FileMatches holds the match offsets found in one file.
type FileMatches struct {
	// Path is the file that was scanned.
	Path string

	// Offsets are the match positions in ascending order. A file with no
	// matches is still listed, with an empty slice.
	Offsets []int64
}

// Stats captures aggregate information about a locate run.
type Stats struct {
	// FilesScanned is the number of files that were opened and scanned.
	FilesScanned int

	// FilesWithMatches is the number of files with at least one match.
	FilesWithMatches int

	// MatchesTotal is the total number of matches across all files.
	MatchesTotal int
}

// Result is the overall locate result.
type Result struct {
	// Files contains one entry per scanned file, in the order the files
	// were given (files inside an expanded directory sorted by path).
	Files []FileMatches

	// Stats holds the aggregate counts.
	Stats Stats
}

// Empty reports whether no file in the run had any match.
func (r *Result) Empty() bool {
	return r.Stats.MatchesTotal == 0
}
