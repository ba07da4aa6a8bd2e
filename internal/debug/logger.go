// Package debug provides opt-in diagnostic logging using log/slog.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = discardLogger()
)

// Init enables or disables diagnostic logging. When enabled, log records go
// to stderr as text. Init may be called at any time; sessions created before
// the call pick up the change.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	if enable {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = discardLogger()
	}
}

// InitFromEnv enables logging when the DBSESSION_DEBUG environment variable
// is set to a non-empty value.
func InitFromEnv() {
	Init(os.Getenv("DBSESSION_DEBUG") != "")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Warn logs at warning level.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
