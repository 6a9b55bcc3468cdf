// Package logger wraps charmbracelet/log with a process-wide default logger
// and configuration-driven level and destination handling.
package logger

import (
	"os"

	charm "github.com/charmbracelet/log"
)

// Logger is a thin wrapper around a charm logger.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger. A nil base gets a fresh logger
// writing to stderr.
func NewLogger(base *charm.Logger) *Logger {
	if base == nil {
		base = charm.New(os.Stderr)
	}
	return &Logger{Logger: base}
}

// GetLevelString returns the lower-case name of the current level.
func (l *Logger) GetLevelString() string {
	return l.GetLevel().String()
}
