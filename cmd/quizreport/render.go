package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/quizreport/internal/config"
	"github.com/nao1215/quizreport/internal/database"
	"github.com/nao1215/quizreport/internal/log"
	"github.com/nao1215/quizreport/internal/model"
	"github.com/nao1215/quizreport/internal/quizlog"
	"github.com/nao1215/quizreport/internal/report"
)

// errMultipleLogsToFile is returned when several logs would overwrite one report file.
var errMultipleLogsToFile = errors.New("multiple quiz logs cannot be rendered to a single FILE output; use console output or render them one at a time")

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <quiz-log>...",
		Short: "Render the report of one or more completed quiz sessions",
		Long: `Render loads completed quiz logs (YAML or JSON) and writes a report for each.

Report generation is best-effort: if the report cannot be written (for example
the output directory does not exist) a warning is logged and the command still
succeeds. Invalid quiz logs and invalid configuration are errors.

Examples:
  # Verbose report on the console
  quizreport render session.yaml

  # Concise report to a file
  quizreport render --mode concise --output report.txt session.yaml

  # Several sessions, loaded concurrently, rendered in argument order
  quizreport render --title "Арифметика" a.yaml b.yaml c.yaml

  # Keep the sessions in the history database
  quizreport render --save session.yaml

Quiz log example:
  entries:
    - number: 1
      question:
        text: "2+2?"
        options: ["3", "4", "5"]
      answers: [2]
      successful: true`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRenderCmd,
	}

	addConfigFlags(cmd)
	addReportFlags(cmd)

	cmd.Flags().StringP("title", "t", "",
		"Report title (default from config)")
	cmd.Flags().Bool("disable", false,
		"Load the quiz logs but do not write a report")
	cmd.Flags().BoolP("save", "s", false,
		"Store the rendered sessions in the history database")
	cmd.Flags().IntP("concurrency", "j", quizlog.DefaultConcurrency,
		"Number of quiz log files read concurrently")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildRenderConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.Report.Enabled && cfg.Report.Output.Mode == config.OutputModeFile && len(args) > 1 {
		return errMultipleLogsToFile
	}

	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runRender(cmd, cfg, args, concurrency, logger)
}

// buildRenderConfig loads the configuration file and applies render flags.
func buildRenderConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := applyReportFlags(cmd, &cfg.Report); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("title") {
		if cfg.Title, err = cmd.Flags().GetString("title"); err != nil {
			return nil, err
		}
	}

	disable, err := cmd.Flags().GetBool("disable")
	if err != nil {
		return nil, err
	}
	if disable {
		cfg.Report.Enabled = false
	}

	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}
	if save {
		cfg.History.Enabled = true
	}

	return cfg, nil
}

// runRender loads every quiz log, then generates the reports in argument order.
func runRender(cmd *cobra.Command, cfg *config.Config, paths []string, concurrency int, logger *slog.Logger) error {
	ctx := cmd.Context()

	loader := quizlog.NewBatchLoader(
		quizlog.WithConcurrency(concurrency),
		quizlog.WithLogger(logger),
	)
	logs, err := loader.LoadAll(ctx, paths)
	if err != nil {
		return err
	}

	var db *database.ResultDB
	if cfg.History.Enabled {
		db, err = database.Open(cfg.History.Dir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()
		logger.Debug("history database opened", "path", db.Path())
	}

	generator := report.NewGenerator(cfg.Title, cfg.Report,
		report.WithLogger(logger),
		report.WithConsole(cmd.OutOrStdout()),
	)

	for i, quizLog := range logs {
		generator.Generate(quizLog)

		if err := saveSession(ctx, db, cfg.Title, paths[i], quizLog, logger); err != nil {
			logger.Error("failed to save quiz session", "source", paths[i], "error", err)
		}
	}

	return nil
}

// saveSession stores a rendered quiz log. If db is nil, this is a no-op.
func saveSession(ctx context.Context, db *database.ResultDB, title, source string, quizLog *model.QuizLog, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	id, err := db.SaveQuizLog(ctx, title, source, quizLog)
	if err != nil {
		return err
	}

	logger.Info("quiz session saved", "id", id, "source", source)
	return nil
}
