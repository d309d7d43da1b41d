// Package log builds the slog logger used by the pathbounds command.
// Records go to a console writer as text or JSON, and optionally to a
// rotating JSON log file.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // "text" or "json"
	File   string // optional path of a rotated JSON log file

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{Level: "warn", Format: "text", MaxSizeMB: 10}
}

// New returns a logger writing to w as configured by opts. The returned
// close function releases the log file, if any.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var console slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		console = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	case "json":
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		return nil, nil, fmt.Errorf("log: unknown format %q", opts.Format)
	}

	closeFn := func() error { return nil }
	h := console
	if strings.TrimSpace(opts.File) != "" {
		size := opts.MaxSizeMB
		if size <= 0 {
			size = Defaults().MaxSizeMB
		}
		f := &lj.Logger{Filename: opts.File, MaxSize: size, MaxBackups: 3, MaxAge: 28}
		h = multiHandler(console, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl}))
		closeFn = f.Close
	}
	return slog.New(h), closeFn, nil
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log: unknown level %q", s)
}

// multiHandler fans out log records to multiple handlers.
func multiHandler(handlers ...slog.Handler) slog.Handler { return &multi{hs: handlers} }

type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
