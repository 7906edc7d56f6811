// Package logging defines the structured-logging interface used across the
// client. Adapters wrap slog and zerolog; New picks one from Options.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request finished", "method", method, "status", status)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Output formats understood by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

// Options controls logger construction.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Defaults to info.
	Level string
	// Format is console (zerolog pretty), json (zerolog) or text (slog).
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger for opts.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case FormatText:
		return NewSlogLogger(out, opts.Level, false)
	case FormatJSON:
		return NewZerologLogger(out, opts.Level, false)
	default:
		return NewZerologLogger(out, opts.Level, true)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(io.Discard, "error", false)
}
