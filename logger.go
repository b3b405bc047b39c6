package richtext

import (
	"log/slog"

	"github.com/gogpu/richtext/internal/logx"
)

// SetLogger configures the logger for richtext and all its sub-packages.
// By default, richtext produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by richtext:
//   - [slog.LevelDebug]: degradations (unknown emoji ids, truncated text,
//     degenerate link boxes)
//   - [slog.LevelInfo]: emoji manifest reloads
//   - [slog.LevelWarn]: manifest watcher errors, unreachable emoji ids
//
// Example:
//
//	// Enable info-level logging to stderr:
//	richtext.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	richtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
//	// Disable logging:
//	richtext.SetLogger(nil)
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by richtext.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.L()
}
