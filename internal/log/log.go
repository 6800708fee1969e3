// ABOUTME: Leveled logging wrapper around logrus for diagnostics that must not touch the prompt
// ABOUTME: Output defaults to io.Discard; SetOutput or OpenFile route it to a file

package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level constants matching logrus levels.
const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(LevelInfo)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableQuote:     true,
		QuoteEmptyFields: true,
	})
	return l
}

// SetLevel sets the global log level.
func SetLevel(l logrus.Level) {
	logger.SetLevel(l)
}

// GetLevel returns the current log level.
func GetLevel() logrus.Level {
	return logger.GetLevel()
}

// ParseLevel maps "debug", "info", "warn" or "error" to a level.
// The empty string maps to LevelInfo.
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LevelInfo, nil
	}
	l, err := logrus.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// SetOutput redirects log output. A nil writer discards it.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
}

// OpenFile appends log output to path. The returned function restores the
// discard writer and closes the file.
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f)
	return func() error {
		SetOutput(nil)
		return f.Close()
	}, nil
}

// With returns an entry carrying a single structured field.
func With(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}
