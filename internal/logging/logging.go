// Package logging builds the slog logger used across alzforge.
//
// While the wizard owns the terminal nothing may be written to stdout or
// stderr, so the CLI either points the logger at a file or discards output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLevel is returned by ParseLevel.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("unknown log format")
)

// Options configures New. The zero value writes nothing.
type Options struct {
	Level  slog.Level
	Format Format
	// Writer receives log records. Nil discards them.
	Writer io.Writer
}

// New returns a logger for opts.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		return Discard()
	}

	ho := &slog.HandlerOptions{Level: opts.Level}
	if opts.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(opts.Writer, ho))
	}
	return slog.New(slog.NewTextHandler(opts.Writer, ho))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel decodes debug, info, warn or error (case-insensitive).
// An empty string means info.
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
	return slog.LevelInfo, fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrUnknownLevel, s)
}

// ParseFormat decodes text or json. An empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("%w: %q (want text or json)", ErrUnknownFormat, s)
}
