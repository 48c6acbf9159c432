package gfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while other goroutines log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gfx and all its sub-packages.
// By default, gfx produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by gfx:
//   - [slog.LevelDebug]: renderer session transitions, surface reallocation
//   - [slog.LevelWarn]: recoverable configuration issues (clamped values)
//   - [slog.LevelError]: configuration entries that were rejected
//
// Example:
//
//	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gfx.
// Sub-packages call this to share the same logger configuration without
// introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LoggerOr returns l when it is non-nil and the package logger otherwise.
func LoggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return Logger()
}
