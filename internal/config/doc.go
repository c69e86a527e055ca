// Package config provides configuration structures and utilities for quizreport.
// It defines the report settings consumed by the report generator (enabled
// flag, formatting mode, output destination), the report title, and the
// session history settings, together with loading them from a YAML file.
package config
