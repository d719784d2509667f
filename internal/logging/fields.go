package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPaths  = "paths"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"

	// Operation fields.
	FieldPattern     = "pattern_len"
	FieldReplacement = "replacement_len"
	FieldPayload     = "payload_len"
	FieldOffset      = "offset"
	FieldNth         = "nth"
	FieldReplaceAll  = "replace_all"
	FieldFillByte    = "fill_byte"
	FieldRecursive   = "recursive"

	// Statistics fields.
	FieldFilesScanned = "files_scanned"
	FieldMatchesTotal = "matches_total"
	FieldApplied      = "applied"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
