package main

import (
	"fmt"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/nao1215/quizreport/internal/database"
	"github.com/nao1215/quizreport/internal/log"
	"github.com/nao1215/quizreport/internal/report"
)

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect quiz sessions stored with render --save",
		Long: `History works with the quiz sessions stored in the history database.

Sessions are stored by "quizreport render --save" or when history.enabled is
set in the configuration file.

Examples:
  # List the ten most recent sessions
  quizreport history list --limit 10

  # Render a stored session again, in concise mode
  quizreport history show 3 --mode concise`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

// newHistoryListCmd creates the history list command.
func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored quiz sessions, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistoryListCmd,
	}

	addConfigFlags(cmd)
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of sessions to list (0 lists all)")

	return cmd
}

// newHistoryShowCmd creates the history show command.
func newHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Render a stored quiz session",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShowCmd,
	}

	addConfigFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// openHistory opens an existing history database.
func openHistory(dir string) (*database.ResultDB, error) {
	db, err := database.Open(dir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return nil, fmt.Errorf("no quiz history found (store sessions with 'quizreport render --save'): %w", err)
	}
	return db, nil
}

// runHistoryListCmd prints the stored sessions as a Markdown table.
func runHistoryListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	db, err := openHistory(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No quiz sessions stored.")
		return nil
	}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		source := s.Source
		if source == "" {
			source = "-"
		}
		rows[i] = []string{
			strconv.FormatInt(s.ID, 10),
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			s.Title,
			source,
			strconv.Itoa(s.Successful) + "/" + strconv.Itoa(s.Total),
		}
	}

	md := markdown.NewMarkdown(out)
	md.H2("Quiz sessions")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Date", "Title", "Source", "Score"},
		Rows:   rows,
	})

	return md.Build()
}

// runHistoryShowCmd renders a stored session through the report generator.
// The report is always produced, even if reports are disabled in the config.
func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", args[0], err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	settings := cfg.Report
	settings.Enabled = true
	if err := applyReportFlags(cmd, &settings); err != nil {
		return err
	}

	db, err := openHistory(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	session, quizLog, err := db.GetQuizLog(cmd.Context(), id)
	if err != nil {
		return err
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	report.NewGenerator(session.Title, settings,
		report.WithLogger(logger),
		report.WithConsole(cmd.OutOrStdout()),
	).Generate(quizLog)

	return nil
}
