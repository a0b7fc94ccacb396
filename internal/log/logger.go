// Package log is a thin component-scoped wrapper over slog. The TUI owns
// the terminal, so the default sink is a file (or discard), never stdout.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger carries a component name on every record.
type Logger struct {
	*slog.Logger
	component string
}

// New builds a logger writing text records to w at the given level.
func New(w io.Writer, level slog.Level, component string) *Logger {
	if w == nil {
		w = io.Discard
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError, "discard")
}

// OpenFile creates the app log file under dir, falling back to a
// discarding logger when the directory cannot be used.
func OpenFile(dir string, level slog.Level, component string) *Logger {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard()
	}
	f, err := os.OpenFile(filepath.Join(dir, "moneytrack.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard()
	}
	return New(f, level, component)
}

// WithComponent rescopes the logger to another component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string { return l.component }
