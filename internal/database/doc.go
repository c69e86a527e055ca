// Package database provides SQLite-based storage of rendered quiz sessions.
//
// Every quiz log that is rendered with history enabled is stored together
// with its title, source file and aggregate counters, so earlier sessions
// can be listed and re-rendered later.
//
// The database is a single file (quizreport.db) opened through the CGO-free
// modernc.org/sqlite driver.
package database
