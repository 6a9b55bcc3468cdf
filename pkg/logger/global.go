package logger

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(charm.Default()))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a new Logger with default settings.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}

// Debug logs a debug message with optional key-value pairs on the default logger.
func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs on the default logger.
func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs on the default logger.
func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs on the default logger.
func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}

// SetLevel sets the level on the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the default logger's level.
func GetLevel() Level {
	return Default().GetLevel()
}

// SetOutput redirects the default logger's output.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}
