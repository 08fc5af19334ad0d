package ggicon

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
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

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggicon, its sub-packages and the
// underlying gg library. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used by ggicon:
//   - [slog.LevelDebug]: font candidates tried and rejected, per-stage timings
//   - [slog.LevelInfo]: resolved font, files written
//   - [slog.LevelWarn]: built-in font fallback
//
// Example:
//
//	ggicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger.
// Sub-packages (internal/icon, internal/fontload, internal/export) call this
// to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
