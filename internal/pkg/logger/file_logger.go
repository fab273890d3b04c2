package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes log records to a rotating file via lumberjack.
type FileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a file logger with size/backup/age based rotation.
func NewFileLogger(level, filePath string, maxSize, maxBackups, maxAge int) *FileLogger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &FileLogger{
		logger: slog.New(slog.NewTextHandler(writer, opts)),
	}
}

// Info logs an informational message
func (l *FileLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message
func (l *FileLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message
func (l *FileLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs an error message and exits the process
func (l *FileLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs an error message and panics
func (l *FileLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
