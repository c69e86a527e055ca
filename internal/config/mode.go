package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ReportMode selects how each quiz entry is formatted in the report.
type ReportMode string

const (
	// ReportModeVerbose prints the question, its options, the answers and
	// the result on separate lines.
	ReportModeVerbose ReportMode = "VERBOSE"

	// ReportModeConcise prints one line per question.
	ReportModeConcise ReportMode = "CONCISE"
)

// OutputMode selects where the report is written.
type OutputMode string

const (
	// OutputModeConsole writes the report to standard output.
	OutputModeConsole OutputMode = "CONSOLE"

	// OutputModeFile writes the report to OutputSettings.Path.
	OutputModeFile OutputMode = "FILE"
)

// upper normalizes mode names so that "verbose", "Verbose" and "VERBOSE"
// are all accepted.
var upper = cases.Upper(language.Und)

func normalize(s string) string {
	return upper.String(strings.TrimSpace(s))
}

// ParseReportMode parses a report mode name in any letter case.
func ParseReportMode(s string) (ReportMode, error) {
	switch m := ReportMode(normalize(s)); m {
	case ReportModeVerbose, ReportModeConcise:
		return m, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidReportMode)
	}
}

// ParseOutputMode parses an output mode name in any letter case.
func ParseOutputMode(s string) (OutputMode, error) {
	switch m := OutputMode(normalize(s)); m {
	case OutputModeConsole, OutputModeFile:
		return m, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidOutputMode)
	}
}

// String returns the mode name.
func (m ReportMode) String() string {
	return string(m)
}

// String returns the mode name.
func (m OutputMode) String() string {
	return string(m)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *ReportMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseReportMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OutputMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseOutputMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}
