package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "quizreport"

	// DefaultTitle is the report title used when none is configured.
	DefaultTitle = "Quiz"

	// DefaultReportMode is the per-entry formatting used when none is configured.
	DefaultReportMode = ReportModeVerbose

	// DefaultOutputMode is the report destination used when none is configured.
	DefaultOutputMode = OutputModeConsole
)

// OutputSettings describes the report destination.
type OutputSettings struct {
	// Mode is CONSOLE or FILE.
	Mode OutputMode `yaml:"mode"`

	// Path is the report file path. Only used when Mode is FILE.
	// The file is created or truncated at generation time.
	Path string `yaml:"path,omitempty"`
}

// ReportSettings controls whether and how a report is generated.
type ReportSettings struct {
	// Enabled gates all report output.
	Enabled bool `yaml:"enabled"`

	// Mode selects VERBOSE or CONCISE per-entry formatting.
	Mode ReportMode `yaml:"mode"`

	// Output is the report destination.
	Output OutputSettings `yaml:"output"`
}

// HistorySettings controls storage of rendered sessions in the history database.
type HistorySettings struct {
	// Enabled saves every rendered quiz log to the history database.
	Enabled bool `yaml:"enabled"`

	// Dir is the directory holding the SQLite database file.
	// Defaults to the XDG data directory (~/.local/share/quizreport on Linux).
	Dir string `yaml:"dir,omitempty"`
}

// Config holds all configuration options for quizreport.
// It is populated from the configuration file, then overridden by CLI flags,
// and passed down explicitly rather than kept in global state.
type Config struct {
	// Title is the display string printed in the report header.
	Title string `yaml:"title"`

	// Report holds the report generation settings.
	Report ReportSettings `yaml:"report"`

	// History holds the session history settings.
	History HistorySettings `yaml:"history"`

	// Verbose enables debug logging. Set from the --verbose flag only.
	Verbose bool `yaml:"-"`

	// ConfigFilePath is the path the configuration was loaded from, if any.
	ConfigFilePath string `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Title: DefaultTitle,
		Report: ReportSettings{
			Enabled: true,
			Mode:    DefaultReportMode,
			Output: OutputSettings{
				Mode: DefaultOutputMode,
			},
		},
		History: HistorySettings{
			Enabled: false,
			Dir:     XDGDataDir(),
		},
	}
}

// XDGDataDir returns the XDG data directory for quizreport.
// On Linux: ~/.local/share/quizreport
// On macOS: ~/Library/Application Support/quizreport
// On Windows: %LOCALAPPDATA%\quizreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for quizreport.
// On Linux: ~/.config/quizreport
// On macOS: ~/Library/Application Support/quizreport
// On Windows: %APPDATA%\quizreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the settings the CLI can verify before any work starts.
// It returns the first problem found.
//
// Whether a FILE path is actually writable is not checked here: that is a
// runtime failure handled by the report generator.
func (c *Config) Validate() error {
	if _, err := ParseReportMode(string(c.Report.Mode)); err != nil {
		return err
	}

	if _, err := ParseOutputMode(string(c.Report.Output.Mode)); err != nil {
		return err
	}

	if c.Report.Output.Mode == OutputModeFile && c.Report.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.History.Enabled && c.History.Dir == "" {
		return ErrMissingHistoryDir
	}

	return nil
}
