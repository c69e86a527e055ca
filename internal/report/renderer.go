package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/quizreport/internal/config"
	"github.com/nao1215/quizreport/internal/model"
)

// Fixed report vocabulary.
const (
	headerPrefix     = "Отчет о прохождении теста "
	questionPrefix   = "Вопрос "
	answersPrefix    = "Ответы пользователя: "
	resultPrefix     = "Содержит правильный ответ: "
	resultYes        = "да"
	resultNo         = "нет"
	totalPrefix      = "Всего вопросов: "
	successfulPrefix = "Отвечено правильно: "

	conciseSuccess = "+"
	conciseFailure = "-"
)

// Renderer writes a quiz log as plain-text report lines.
//
// Entries and answers are written exactly in stored order: nothing is
// sorted, filtered or deduplicated.
type Renderer struct {
	output io.Writer

	// mode selects the per-entry block format.
	mode config.ReportMode

	// title is printed once in the header line.
	title string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithMode sets the per-entry formatting mode. Default is VERBOSE.
func WithMode(mode config.ReportMode) RendererOption {
	return func(r *Renderer) {
		r.mode = mode
	}
}

// WithTitle sets the title printed in the header line.
func WithTitle(title string) RendererOption {
	return func(r *Renderer) {
		r.title = title
	}
}

// NewRenderer creates a Renderer that writes to output.
func NewRenderer(output io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		output: output,
		mode:   config.ReportModeVerbose,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Write renders quizLog and writes it to the output.
// It returns the number of bytes written and the first write error, if any.
// Errors are not retried.
func (r *Renderer) Write(quizLog *model.QuizLog) (int, error) {
	var sb strings.Builder

	r.writeHeader(&sb)

	if quizLog != nil {
		for i := range quizLog.Entries {
			entry := &quizLog.Entries[i]
			if r.mode == config.ReportModeVerbose {
				writeVerbose(&sb, entry)
			} else {
				writeConcise(&sb, entry)
			}
		}
	}

	writeSummary(&sb, quizLog)

	return io.WriteString(r.output, sb.String())
}

// writeHeader writes the title line.
func (r *Renderer) writeHeader(sb *strings.Builder) {
	sb.WriteString(headerPrefix)
	sb.WriteString(r.title)
	sb.WriteString(".\n")
}

// writeVerbose writes the question, its numbered options, the answers,
// the result and a separating blank line.
func writeVerbose(sb *strings.Builder, entry *model.Entry) {
	sb.WriteString(questionPrefix)
	sb.WriteString(strconv.Itoa(entry.Number))
	sb.WriteString(": ")
	sb.WriteString(entry.Question.Text)
	sb.WriteString("\n")

	for i, option := range entry.Question.Options {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(") ")
		sb.WriteString(option)
		sb.WriteString("\n")
	}

	// Every answer is followed by a space, including the last one.
	sb.WriteString(answersPrefix)
	for _, answer := range entry.Answers {
		sb.WriteString(strconv.Itoa(answer))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	sb.WriteString(resultPrefix)
	if entry.Successful {
		sb.WriteString(resultYes)
	} else {
		sb.WriteString(resultNo)
	}
	sb.WriteString("\n")

	sb.WriteString("\n")
}

// writeConcise writes "<number>(<sign>): <a1,a2,...>".
func writeConcise(sb *strings.Builder, entry *model.Entry) {
	sign := conciseFailure
	if entry.Successful {
		sign = conciseSuccess
	}

	answers := make([]string, len(entry.Answers))
	for i, answer := range entry.Answers {
		answers[i] = strconv.Itoa(answer)
	}

	sb.WriteString(strconv.Itoa(entry.Number))
	sb.WriteString("(")
	sb.WriteString(sign)
	sb.WriteString("): ")
	sb.WriteString(strings.Join(answers, ","))
	sb.WriteString("\n")
}

// writeSummary writes the total and successful counters.
func writeSummary(sb *strings.Builder, quizLog *model.QuizLog) {
	sb.WriteString(totalPrefix)
	sb.WriteString(strconv.Itoa(quizLog.Total()))
	sb.WriteString("\n")
	sb.WriteString(successfulPrefix)
	sb.WriteString(strconv.Itoa(quizLog.Successful()))
	sb.WriteString("\n")
}
