package quizlog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/quizreport/internal/model"
)

const sampleYAML = `entries:
  - number: 1
    question:
      text: "2+2?"
      options: ["3", "4", "5"]
    answers: [2]
    successful: true
  - number: 2
    question:
      text: "Столица Франции?"
      options: ["Париж", "Лион", "Марсель"]
    answers: [3, 1, 3]
    successful: false
`

const sampleJSON = `{
  "entries": [
    {"number": 1, "question": {"text": "2+2?", "options": ["3", "4", "5"]}, "answers": [2], "successful": true}
  ]
}`

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads YAML log", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "log.yaml", sampleYAML)

		quizLog, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quizLog.Total() != 2 || quizLog.Successful() != 1 {
			t.Errorf("unexpected counters: total=%d successful=%d", quizLog.Total(), quizLog.Successful())
		}

		second := quizLog.Entries[1]
		if second.Question.Text != "Столица Франции?" {
			t.Errorf("unexpected question text %q", second.Question.Text)
		}
		if len(second.Answers) != 3 || second.Answers[0] != 3 || second.Answers[1] != 1 || second.Answers[2] != 3 {
			t.Errorf("answers were not kept as stored: %v", second.Answers)
		}
	})

	t.Run("loads JSON log", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "log.json", sampleJSON)

		quizLog, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quizLog.Total() != 1 || !quizLog.Entries[0].Successful {
			t.Errorf("unexpected log: %+v", quizLog)
		}
	})

	t.Run("empty file is an empty log", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "empty.yaml", "")

		quizLog, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quizLog.IsEmpty() || quizLog.Entries == nil {
			t.Errorf("expected empty non-nil entries, got %+v", quizLog.Entries)
		}
	})

	t.Run("missing file returns ErrLogNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrLogNotFound) {
			t.Errorf("expected ErrLogNotFound, got %v", err)
		}
	})

	t.Run("invalid log is rejected", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "bad.yaml", "entries:\n  - number: 2\n  - number: 1\n")

		_, err := Load(path)
		if !errors.Is(err, model.ErrEntryOutOfOrder) {
			t.Errorf("expected ErrEntryOutOfOrder, got %v", err)
		}
	})

	t.Run("malformed YAML is rejected", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "broken.yaml", "entries: [}")

		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestBatchLoader(t *testing.T) {
	t.Parallel()

	t.Run("returns logs in path order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var paths []string
		for i := 1; i <= 10; i++ {
			content := fmt.Sprintf("entries:\n  - number: %d\n    answers: []\n", i)
			paths = append(paths, writeFile(t, dir, fmt.Sprintf("log%02d.yaml", i), content))
		}

		logs, err := NewBatchLoader(WithConcurrency(3)).LoadAll(context.Background(), paths)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(logs) != len(paths) {
			t.Fatalf("expected %d logs, got %d", len(paths), len(logs))
		}
		for i, quizLog := range logs {
			if quizLog.Entries[0].Number != i+1 {
				t.Errorf("log %d has entry number %d", i, quizLog.Entries[0].Number)
			}
		}
	})

	t.Run("first failure is returned", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		paths := []string{
			writeFile(t, dir, "ok.yaml", sampleYAML),
			filepath.Join(dir, "missing.yaml"),
		}

		logs, err := NewBatchLoader().LoadAll(context.Background(), paths)
		if !errors.Is(err, ErrLogNotFound) {
			t.Errorf("expected ErrLogNotFound, got %v", err)
		}
		if logs != nil {
			t.Error("expected nil logs on failure")
		}
	})

	t.Run("cancelled context stops loading", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := writeFile(t, t.TempDir(), "ok.yaml", sampleYAML)
		_, err := NewBatchLoader(WithConcurrency(1)).LoadAll(ctx, []string{path})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("no paths", func(t *testing.T) {
		t.Parallel()

		logs, err := NewBatchLoader().LoadAll(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(logs) != 0 {
			t.Errorf("expected no logs, got %d", len(logs))
		}
	})

	t.Run("non-positive concurrency keeps default", func(t *testing.T) {
		t.Parallel()

		b := NewBatchLoader(WithConcurrency(0))
		if b.concurrency != DefaultConcurrency {
			t.Errorf("expected %d, got %d", DefaultConcurrency, b.concurrency)
		}
	})
}
