package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the mode parsers, and
// can be checked with errors.Is().
var (
	// ErrInvalidReportMode is returned when a report mode is neither
	// VERBOSE nor CONCISE.
	ErrInvalidReportMode = errors.New("invalid report mode: must be VERBOSE or CONCISE")

	// ErrInvalidOutputMode is returned when an output mode is neither
	// CONSOLE nor FILE.
	ErrInvalidOutputMode = errors.New("invalid output mode: must be CONSOLE or FILE")

	// ErrMissingOutputPath is returned when the output mode is FILE but no
	// path is configured.
	ErrMissingOutputPath = errors.New("missing output path: report.output.path is required for FILE output")

	// ErrMissingHistoryDir is returned when history is enabled without a
	// database directory.
	ErrMissingHistoryDir = errors.New("missing history directory: history.dir is required when history is enabled")
)
