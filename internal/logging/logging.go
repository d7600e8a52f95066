// Package logging configures the process-wide slog logger.
//
// Output always goes to stdout. With a directory configured it is also
// appended to <dir>/<date>/<date-hour>.log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Setup builds a text logger at level writing to stdout and, when dir is
// non-empty, to an hourly file below dir. The returned closer releases the
// file; it is a no-op without one.
func Setup(level, dir string) (*slog.Logger, io.Closer, error) {
	return setup(os.Stdout, level, dir, time.Now())
}

func setup(stdout io.Writer, level, dir string, now time.Time) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = stdout
		closer io.Closer = nopCloser{}
	)
	if dir != "" {
		f, err := openLogFile(dir, now)
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(stdout, f)
		closer = f
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
	return logger, closer, nil
}

// FilePath returns the log file used at time now below dir.
func FilePath(dir string, now time.Time) string {
	day := now.Format("2006-01-02")
	return filepath.Join(dir, day, now.Format("2006-01-02-15")+".log")
}

func openLogFile(dir string, now time.Time) (*os.File, error) {
	path := FilePath(dir, now)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("logging: unknown level %q", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
