package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/quizreport/internal/config"
	"github.com/nao1215/quizreport/internal/model"
)

// reportFileMode restricts report files to the owner: they contain the
// respondent's answers.
const reportFileMode = 0600

// Generator decides whether and where a report is written and runs the
// Renderer against the chosen sink.
//
// A Generator holds no mutable state and may be reused for many quiz logs.
type Generator struct {
	title    string
	settings config.ReportSettings

	// logger receives diagnostics. Failures are logged at Warn.
	logger *slog.Logger

	// console is the CONSOLE sink. It is flushed but never closed.
	console io.Writer
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for diagnostics.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithConsole replaces standard output as the CONSOLE sink.
func WithConsole(w io.Writer) GeneratorOption {
	return func(g *Generator) {
		g.console = w
	}
}

// NewGenerator creates a Generator for the given report title and settings.
func NewGenerator(title string, settings config.ReportSettings, opts ...GeneratorOption) *Generator {
	g := &Generator{
		title:    title,
		settings: settings,
		console:  os.Stdout,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// Generate writes the report for quizLog to the configured sink.
//
// When reports are disabled nothing is opened or written. Any failure while
// opening the sink, rendering, or releasing the sink is logged as a warning
// and swallowed; Generate always returns normally.
func (g *Generator) Generate(quizLog *model.QuizLog) {
	if !g.settings.Enabled {
		g.logger.Debug("report output is disabled, report generation has been stopped")
		return
	}

	g.logger.Debug("report will be generated",
		"mode", g.settings.Mode,
		"output", g.settings.Output.Mode,
	)

	if err := g.generate(quizLog); err != nil {
		g.logger.Warn("an error occurred while generating the report",
			"error", err,
			"output", g.settings.Output.Mode,
			"path", g.settings.Output.Path,
		)
	}
}

// generate is the single failure scope of Generate. The sink is released on
// every path, including a panic inside the renderer.
func (g *Generator) generate(quizLog *model.QuizLog) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()

	s, err := g.openSink()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	renderer := NewRenderer(s, WithMode(g.settings.Mode), WithTitle(g.title))
	if _, err := renderer.Write(quizLog); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// openSink returns the console sink for CONSOLE output and a created or
// truncated file for anything else. Parent directories are not created.
func (g *Generator) openSink() (*sink, error) {
	if g.settings.Output.Mode == config.OutputModeConsole {
		return newSink(g.console, nil), nil
	}

	path := g.settings.Output.Path
	if path == "" {
		return nil, ErrEmptyOutputPath
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFileMode) //nolint:gosec // Configured report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return newSink(f, f), nil
}

// sink buffers report output and releases the destination on Close.
type sink struct {
	*bufio.Writer

	// closer is nil for the console, which must stay open.
	closer io.Closer
}

func newSink(w io.Writer, closer io.Closer) *sink {
	return &sink{
		Writer: bufio.NewWriter(w),
		closer: closer,
	}
}

// Close flushes buffered output and closes the destination if it owns one.
// The destination is closed even when the flush fails.
func (s *sink) Close() error {
	flushErr := s.Flush()
	if flushErr != nil {
		flushErr = fmt.Errorf("failed to flush report: %w", flushErr)
	}
	if s.closer == nil {
		return flushErr
	}
	if err := s.closer.Close(); err != nil {
		return errors.Join(flushErr, fmt.Errorf("failed to close report file: %w", err))
	}
	return flushErr
}
