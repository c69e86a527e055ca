// Package report renders quiz session reports.
//
// This package contains two pieces:
//   - Renderer: turns a model.QuizLog into report text in VERBOSE or
//     CONCISE mode and writes it to an io.Writer
//   - Generator: decides whether a report is produced at all, opens the
//     configured sink (standard output or a file), runs the Renderer and
//     releases the sink
//
// Report generation is best-effort. Generator.Generate never returns an
// error and never panics: sink and write failures are logged as warnings
// and dropped, so a broken report cannot abort the caller's workflow.
//
// The report vocabulary is fixed to Russian.
//
// Concurrent Generate calls that target the same FILE path are not
// arbitrated: the file is truncated by each call and the resulting content
// is undefined. Callers that need this must serialize the calls themselves.
package report
