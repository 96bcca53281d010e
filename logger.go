package chart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record; Enabled reports false so attributes are never
// evaluated.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger routes chart diagnostics to l. Charts log nothing until a logger
// is set; nil restores that. Safe for concurrent use.
//
// Records emitted:
//   - [slog.LevelDebug] "chart: geometry recomputed" with reason, kind and size
//   - [slog.LevelDebug] "chart: export disabled" and "chart: export finished after unmount"
//   - [slog.LevelWarn] "chart: non-finite values replaced by zero"
//   - export pipeline records, see package export
//
// Example:
//
//	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
