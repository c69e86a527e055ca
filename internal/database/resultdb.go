package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/quizreport/internal/model"
)

// FileName is the database file name inside the database directory.
const FileName = "quizreport.db"

// ErrSessionNotFound is returned when no session has the requested ID.
var ErrSessionNotFound = errors.New("quiz session not found")

// ResultDB stores quiz sessions in SQLite.
type ResultDB struct {
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ResultDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ResultDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ResultDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ResultDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Path returns the database file path.
func (rdb *ResultDB) Path() string {
	return rdb.dbPath
}

// Close closes the database connection.
func (rdb *ResultDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ResultDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS quiz_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		source TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total INTEGER NOT NULL,
		successful INTEGER NOT NULL,
		log_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON quiz_sessions(timestamp);
	CREATE INDEX IF NOT EXISTS idx_sessions_title ON quiz_sessions(title);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// Session is the stored summary of one quiz session.
type Session struct {
	// ID is the unique identifier of the session in the database.
	ID int64

	// Title is the report title the session was rendered with.
	Title string

	// Source is the quiz log file the session was loaded from, if any.
	Source string

	// Timestamp is when the session was stored.
	Timestamp time.Time

	// Total is the number of questions in the session.
	Total int

	// Successful is the number of correctly answered questions.
	Successful int
}

// SaveQuizLog stores a quiz log and returns its session ID.
func (rdb *ResultDB) SaveQuizLog(ctx context.Context, title, source string, quizLog *model.QuizLog) (int64, error) {
	logJSON, err := json.Marshal(quizLog)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize quiz log: %w", err)
	}

	query := `
	INSERT INTO quiz_sessions (title, source, total, successful, log_json)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := rdb.db.ExecContext(ctx, query,
		title,
		source,
		quizLog.Total(),
		quizLog.Successful(),
		string(logJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz session: %w", err)
	}

	return result.LastInsertId()
}

// ListSessions returns stored sessions, newest first.
// A limit of zero or less returns all sessions.
func (rdb *ResultDB) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	query := `
	SELECT id, title, source, timestamp, total, successful
	FROM quiz_sessions
	ORDER BY timestamp DESC, id DESC
	`
	args := make([]interface{}, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var source sql.NullString
		var timestamp string

		if err := rows.Scan(&s.ID, &s.Title, &source, &timestamp, &s.Total, &s.Successful); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.Source = source.String
		s.Timestamp = parseTimestamp(timestamp)
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// GetQuizLog returns the stored session and its quiz log by ID.
// It returns ErrSessionNotFound if no such session exists.
func (rdb *ResultDB) GetQuizLog(ctx context.Context, id int64) (*Session, *model.QuizLog, error) {
	query := `
	SELECT id, title, source, timestamp, total, successful, log_json
	FROM quiz_sessions
	WHERE id = ?
	`

	var s Session
	var source sql.NullString
	var timestamp string
	var logJSON string

	err := rdb.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Title,
		&source,
		&timestamp,
		&s.Total,
		&s.Successful,
		&logJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("session %d: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get quiz session: %w", err)
	}

	s.Source = source.String
	s.Timestamp = parseTimestamp(timestamp)

	quizLog := model.NewQuizLog()
	if err := json.Unmarshal([]byte(logJSON), quizLog); err != nil {
		return nil, nil, fmt.Errorf("failed to parse quiz log: %w", err)
	}

	return &s, quizLog, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses a SQLite timestamp, returning zero time if no
// known format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
