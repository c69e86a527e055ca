// Package main provides the entry point for the quizreport CLI.
//
// quizreport renders a human-readable report of a completed quiz session:
// per-question results plus an aggregate score, written to the console or
// to a file.
//
// Usage:
//
//	quizreport render session.yaml
//	quizreport render --mode concise --output report.txt session.yaml
//	quizreport history list
//
// See --help for all available options.
package main

// main is the entry point for quizreport.
func main() {
	Execute()
}
