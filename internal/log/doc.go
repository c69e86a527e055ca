// Package log provides privacy-preserving logging for quizreport, built on
// top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic masking of respondent-identifying values (names, e-mail
//     addresses, phone numbers, chat identifiers) and credentials
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// Quiz sessions belong to real respondents. Diagnostics about a failed
// report must be shareable without leaking who took the quiz, so values are
// masked even in verbose mode.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("report generation failed",
//	    "path", "/tmp/report.txt",     // kept
//	    "respondent", "ivan@mail.ru",  // masked
//	)
//	slog.SetDefault(logger)
package log
