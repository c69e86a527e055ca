package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/quizreport/internal/config"
)

//go:embed templates/quizreport.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a quizreport configuration file",
		Long: `Init writes a documented .quizreport configuration file.

The file selects the report title, the report mode (VERBOSE or CONCISE), the
output (CONSOLE or FILE with a path) and whether rendered sessions are kept in
the history database.

Examples:
  # Create .quizreport in the current directory
  quizreport init

  # Create the file somewhere else
  quizreport init --output ~/.quizreport

  # Replace an existing file
  quizreport init --force`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile, "Path of the configuration file to create")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

// runInitCmd writes the embedded configuration template.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", outputPath)
	}

	content, err := configTemplate.ReadFile("templates/quizreport.yaml")
	if err != nil {
		return fmt.Errorf("failed to read configuration template: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "Edit it to choose the report mode, the output and the history database.")

	return nil
}
