// Package logger provides the leveled, printf-style logger used across
// coursecat. Entries are emitted through a log/slog text handler.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log entry.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config value such as "debug" or "WARN" to a Level.
// Unknown values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds the configuration for the logger.
type Config struct {
	Level  Level
	Output io.Writer
}

// Logger is a leveled logger with optional structured fields.
type Logger struct {
	level *slog.LevelVar
	sl    *slog.Logger
}

// New creates a new logger with the given configuration.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	lv := new(slog.LevelVar)
	lv.Set(cfg.Level.slog())
	h := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: lv})
	return &Logger{level: lv, sl: slog.New(h)}
}

// NewDefault creates a logger at INFO writing to stderr.
func NewDefault() *Logger {
	return New(Config{Level: INFO, Output: os.Stderr})
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	l := New(Config{Level: ERROR, Output: io.Discard})
	l.level.Set(slog.LevelError + 4)
	return l
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) { l.level.Set(level.slog()) }

// WithFields returns a logger that attaches fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{level: l.level, sl: l.sl.With(args...)}
}

func (l *Logger) log(level Level, message string, args ...any) {
	if !l.sl.Enabled(context.Background(), level.slog()) {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	l.sl.Log(context.Background(), level.slog(), message)
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, args ...any) { l.log(DEBUG, message, args...) }

// Info logs an info message.
func (l *Logger) Info(message string, args ...any) { l.log(INFO, message, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(message string, args ...any) { l.log(WARN, message, args...) }

// Error logs an error message.
func (l *Logger) Error(message string, args ...any) { l.log(ERROR, message, args...) }

var defaultLogger = NewDefault()

// SetDefault replaces the package-level logger.
func SetDefault(l *Logger) { defaultLogger = l }

// Default returns the package-level logger.
func Default() *Logger { return defaultLogger }

func Debug(message string, args ...any) { defaultLogger.Debug(message, args...) }
func Info(message string, args ...any)  { defaultLogger.Info(message, args...) }
func Warn(message string, args ...any)  { defaultLogger.Warn(message, args...) }
func Error(message string, args ...any) { defaultLogger.Error(message, args...) }
