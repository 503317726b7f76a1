// Package logger provides a simple logging interface for termviz components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation. The default
// implementation is a sugared zap logger with a console encoder.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv enables debug output for loggers created with NewEnvLogger.
const DebugEnv = "TERMVIZ_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zapLogger implements Logger on top of a sugared zap logger.
type zapLogger struct {
	prefix string
	sugar  *zap.SugaredLogger
}

// New creates a logger writing console-encoded lines to w.
// The prefix is prepended to all log messages (e.g., "[ingest]").
func New(w io.Writer, prefix string, debug bool) Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return &zapLogger{prefix: prefix, sugar: zap.New(core).Sugar()}
}

// NewEnvLogger creates a stderr logger that respects the TERMVIZ_DEBUG environment variable.
func NewEnvLogger(prefix string) Logger {
	return New(os.Stderr, prefix, os.Getenv(DebugEnv) != "")
}

func (l *zapLogger) format(format string) string {
	if l.prefix == "" {
		return format
	}
	return l.prefix + " " + format
}

func (l *zapLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(l.format(format), args...)
}

func (l *zapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(l.format(format), args...)
}

func (l *zapLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(l.format(format), args...)
}

func (l *zapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(l.format(format), args...)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
// Full-screen views use it so log lines never land on the alternate screen.
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
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

// defaultLogger is what components fall back to when given no logger.
// The CLI replaces it once it knows where logs should go.
var defaultLogger Logger = Noop()

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
