// Package applog builds the structured loggers used across Sketcher.
package applog

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// sessionID tags every record written during one process run.
var sessionID = uuid.NewString()

// SessionID returns the identifier of the current run.
func SessionID() string {
	return sessionID
}

// New returns a text logger writing to out at the given level.
// A nil out means stderr.
func New(out io.Writer, level slog.Level) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("session", sessionID))
}

// WithComponent derives a child logger for one part of the program.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(slog.String("component", name))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
