package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/quizreport/internal/config"
)

// errConflictingOutputs is returned when both --output and --console are given.
var errConflictingOutputs = errors.New("conflicting outputs: --output and --console cannot be used together")

// addConfigFlags registers the flags shared by commands that read the
// configuration file.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .quizreport in current or home directory)")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")
}

// addReportFlags registers the flags that override report settings.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "",
		"Report mode: VERBOSE or CONCISE (default from config, VERBOSE)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to this file instead of the console")
	cmd.Flags().Bool("console", false,
		"Write the report to the console even if the config file selects FILE")
}

// loadConfig finds and loads the configuration file.
// If the user explicitly named a file that does not exist, it is an error;
// otherwise a missing file yields the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	found := config.FindConfigFile(configPath)

	var cfg *config.Config
	switch {
	case found != "":
		cfg, err = config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
	case configPath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	default:
		cfg = config.NewConfig()
	}

	if cmd.Flags().Changed("db-dir") {
		if cfg.History.Dir, err = cmd.Flags().GetString("db-dir"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyReportFlags overrides report settings with explicitly set flags.
func applyReportFlags(cmd *cobra.Command, settings *config.ReportSettings) error {
	if cmd.Flags().Changed("mode") {
		value, err := cmd.Flags().GetString("mode")
		if err != nil {
			return err
		}
		if settings.Mode, err = config.ParseReportMode(value); err != nil {
			return err
		}
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	console, err := cmd.Flags().GetBool("console")
	if err != nil {
		return err
	}

	switch {
	case output != "" && console:
		return errConflictingOutputs
	case output != "":
		settings.Output = config.OutputSettings{Mode: config.OutputModeFile, Path: output}
	case console:
		settings.Output = config.OutputSettings{Mode: config.OutputModeConsole}
	}

	return nil
}
