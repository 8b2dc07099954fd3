// Package logger builds zerolog loggers for the TUI. Standard output
// belongs to the terminal UI, so logs go to an explicit writer or file.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is given.
const DefaultLevel = "info"

// New creates a logger writing to w at the given level. With human set,
// entries are formatted by zerolog's console writer instead of JSON.
func New(w io.Writer, level string, human bool) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if human {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.NoColor = true
		console.TimeFormat = time.RFC3339
		out = console
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Open creates a human-readable logger appending to the file at path. The
// returned function closes the file.
func Open(path, level string) (zerolog.Logger, func() error, error) {
	if _, err := parseLevel(level); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, level, true)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return l, f.Close, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}
