package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const arithmeticLog = `entries:
  - number: 1
    question:
      text: "2+2?"
      options: ["3", "4", "5"]
    answers: [2]
    successful: true
`

const mixedLog = `entries:
  - number: 1
    question:
      text: "2+2?"
      options: ["3", "4", "5"]
    answers: [2]
    successful: true
  - number: 2
    question:
      text: "Столица Франции?"
      options: ["Париж", "Лион"]
    answers: [2, 1]
    successful: false
`

// writeTestFile writes content to name inside dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeTestConfig writes a config file so tests never pick up a user's .quizreport.
func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return writeTestFile(t, dir, "config.yaml", content)
}

// executeRoot runs the root command with args and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
