package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/quizreport/internal/database"
)

func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	if !names["list"] || !names["show"] {
		t.Errorf("expected list and show subcommands, got %v", names)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbDir := filepath.Join(dir, "db")
	cfgPath := writeTestConfig(t, dir, "title: Арифметика\nreport:\n  mode: CONCISE\n")
	logPath := writeTestFile(t, dir, "log.yaml", mixedLog)

	if _, _, err := executeRoot(t, "render", "-c", cfgPath, "--db-dir", dbDir, "--save", logPath); err != nil {
		t.Fatalf("render --save failed: %v", err)
	}

	t.Run("list shows the stored session", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := executeRoot(t, "history", "list", "-c", cfgPath, "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"## Quiz sessions", "ID", "Арифметика", "1/2"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("expected %q in listing, got %q", want, stdout)
			}
		}
	})

	t.Run("show re-renders the session", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := executeRoot(t, "history", "show", "1", "-c", cfgPath, "--db-dir", dbDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Отчет о прохождении теста Арифметика.\n" +
			"1(+): 2\n" +
			"2(-): 2,1\n" +
			"Всего вопросов: 2\n" +
			"Отвечено правильно: 1\n"
		if stdout != want {
			t.Errorf("got %q, want %q", stdout, want)
		}
	})

	t.Run("show accepts a mode override", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := executeRoot(t, "history", "show", "1", "-c", cfgPath, "--db-dir", dbDir, "-m", "verbose")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "Вопрос 2: Столица Франции?\n1) Париж\n2) Лион\nОтветы пользователя: 2 1 \n") {
			t.Errorf("expected verbose block, got %q", stdout)
		}
	})

	t.Run("show reports a missing session", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "history", "show", "99", "-c", cfgPath, "--db-dir", dbDir)
		if !errors.Is(err, database.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestHistoryListEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dbDir := filepath.Join(dir, "db")
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	_ = db.Close()

	cfgPath := writeTestConfig(t, dir, "title: T\n")
	stdout, _, err := executeRoot(t, "history", "list", "-c", cfgPath, "--db-dir", dbDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "No quiz sessions stored.\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestHistoryErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir, "title: T\n")
	missingDB := filepath.Join(dir, "no-db")

	t.Run("list without database", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "history", "list", "-c", cfgPath, "--db-dir", missingDB)
		if err == nil || !strings.Contains(err.Error(), "no quiz history found") {
			t.Errorf("expected a missing history error, got %v", err)
		}
	})

	t.Run("show with invalid id", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "history", "show", "abc", "-c", cfgPath, "--db-dir", missingDB)
		if err == nil || !strings.Contains(err.Error(), "invalid session id") {
			t.Errorf("expected an invalid id error, got %v", err)
		}
	})
}
