// Package log provides helpers for creating a configured slog.Logger.
//
// When no log file is configured, non-error records go to the console writer
// chosen by the caller (stdout, or stderr when stdout carries command output)
// and errors always go to stderr.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

// levelMax is above every level slog can produce.
const levelMax slog.Level = math.MaxInt

// ParseLevel maps a --log.level value to a slog.Level. Besides "trace" it
// accepts anything slog.Level.UnmarshalText does ("debug", "WARN", "info+2").
// Unknown or empty values fall back to info.
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// fanout hands every record to each handler that accepts its level.
type fanout []slog.Handler

// Fanout combines handlers into one.
func Fanout(hs ...slog.Handler) slog.Handler {
	return fanout(hs)
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(f, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}

// band passes records with min <= level < max to h.
type band struct {
	min, max slog.Level
	h        slog.Handler
}

func (b band) accepts(l slog.Level) bool { return l >= b.min && l < b.max }

func (b band) Enabled(ctx context.Context, level slog.Level) bool {
	return b.accepts(level) && b.h.Enabled(ctx, level)
}

func (b band) Handle(ctx context.Context, r slog.Record) error {
	if !b.accepts(r.Level) {
		return nil
	}
	return b.h.Handle(ctx, r)
}

func (b band) WithAttrs(attrs []slog.Attr) slog.Handler {
	return band{min: b.min, max: b.max, h: b.h.WithAttrs(attrs)}
}

func (b band) WithGroup(name string) slog.Handler {
	return band{min: b.min, max: b.max, h: b.h.WithGroup(name)}
}

func textHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: LevelTrace})
}

// NewConsoleHandler sends records from level up to (not including) error to
// console, and errors to stderr.
func NewConsoleHandler(console, stderr io.Writer, level slog.Level) slog.Handler {
	return Fanout(
		band{min: level, max: slog.LevelError, h: textHandler(console)},
		band{min: max(level, slog.LevelError), max: levelMax, h: textHandler(stderr)},
	)
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
// With a log file, console output moves entirely to stderr.
// The returned closers must be closed by the caller on exit.
func SetupLogger(logLevel, logFile string, console io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)

	if logFile == "" {
		return slog.New(NewConsoleHandler(console, os.Stderr, level)), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(Fanout(
		band{min: level, max: levelMax, h: textHandler(os.Stderr)},
		band{min: level, max: levelMax, h: textHandler(f)},
	))
	return logger, []io.Closer{f}, nil
}
