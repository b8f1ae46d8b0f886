// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)
	initOnce      sync.Once
	sessionID     = uuid.NewString()
)

// SessionID identifies this process in log output.
func SessionID() string { return sessionID }

// Init initializes the logger with a level and no filtering.
func Init(level slog.Level, output io.Writer) {
	cfg := NewConfig()
	cfg.LogLevel = level.String()
	Setup(cfg, output)
}

// Setup initializes the logger from cfg. Only the first call has effect.
func Setup(cfg Config, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		cfg.process()
		logLevel.Set(cfg.level)

		base := slog.NewTextHandler(output, &slog.HandlerOptions{
			Level:       logLevel,
			AddSource:   true,
			ReplaceAttr: shortenAttrs,
		})
		defaultLogger = slog.New(newFilteringHandler(base, &cfg)).With(slog.String("session", sessionID))
		defaultLogger.Info("Logger initialized", slog.String("level", cfg.level.String()))
	})
}

func shortenAttrs(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.SourceKey:
		if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
			source.File = filepath.Join(filepath.Base(filepath.Dir(source.File)), filepath.Base(source.File))
		}
	case slog.TimeKey:
		a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
	}
	return a
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	logLevel.Set(level)
}

func ensureInitialized() {
	initOnce.Do(func() {
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// logAtLevel records the caller of the exported wrapper as the source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	ensureInitialized()
	ctx := context.Background()
	if !defaultLogger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = defaultLogger.Handler().Handle(ctx, r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a filterable tag.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
