package report

import "errors"

var (
	// ErrEmptyOutputPath is returned when a file sink is requested without a path.
	ErrEmptyOutputPath = errors.New("report output path is empty")

	// ErrRenderPanic wraps a panic recovered while producing a report.
	ErrRenderPanic = errors.New("report rendering panicked")
)
