// Package model defines the quiz session data handed to the report engine.
//
// This package contains the following main types:
//   - Question: The question text and its ordered answer options
//   - Entry: One evaluated question with the respondent's answers
//   - QuizLog: The completed, ordered record of a quiz session
//
// The models are produced by the quiz-execution side (or loaded from a file
// by the CLI) and are read-only from the report package's point of view.
// They carry YAML and JSON tags so that logs can be loaded from disk and
// stored in the history database.
package model
