// Package logger provides a simple logging interface for graphtop components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
//
// The dashboard owns the terminal while it runs, so log output goes to a
// file (or nowhere) rather than stdout/stderr.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// writerLogger implements Logger on top of a standard library log.Logger.
// Debug messages are only written when debug is enabled.
type writerLogger struct {
	out    *log.Logger
	prefix string
	debug  bool
}

// New creates a logger writing to w. The prefix is prepended to all log
// messages (e.g., "[sampler]" or "[screen]").
func New(w io.Writer, prefix string, debug bool) Logger {
	return &writerLogger{
		out:    log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		prefix: prefix,
		debug:  debug,
	}
}

// Open creates a logger appending to the file at path, creating parent
// directories as needed. An empty path yields a no-op logger. The returned
// closer must be closed when logging is finished.
func Open(path, prefix string, debug bool) (Logger, io.Closer, error) {
	if path == "" {
		return Noop(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, prefix, debug), f, nil
}

func (l *writerLogger) line(format string) string {
	if l.prefix == "" {
		return format
	}
	return l.prefix + " " + format
}

func (l *writerLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.out.Printf(l.line(format), args...)
	}
}

func (l *writerLogger) Info(format string, args ...interface{}) {
	l.out.Printf(l.line(format), args...)
}

func (l *writerLogger) Warn(format string, args ...interface{}) {
	l.out.Printf(l.line("WARN: "+format), args...)
}

func (l *writerLogger) Error(format string, args ...interface{}) {
	l.out.Printf(l.line("ERROR: "+format), args...)
}

// noopLogger implements Logger but discards all messages.
// Useful for testing or when logging is not desired.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Exported for use in test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
// Useful for testing that code logs expected messages.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
