package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger writes log records to stdout using a slog text handler.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger filtering below the given level.
func NewConsoleLogger(level string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &ConsoleLogger{
		logger: slog.New(slog.NewTextHandler(os.Stdout, opts)),
	}
}

// Info logs an informational message
func (l *ConsoleLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message
func (l *ConsoleLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs an error message and exits the process
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs an error message and panics
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
