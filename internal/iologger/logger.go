// Package iologger sets up the slog logger of GNpest from
// config.LogConfig.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnpest/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gnpest.log"

// Init makes a logger described by cfg the default slog logger.
// For the "file" destination the log goes to logDir/gnpest.log, the
// file is truncated unless keep is true. The returned closer
// releases the file and does nothing for stdout or stderr.
func Init(logDir string, cfg config.LogConfig, keep bool) (io.Closer, error) {
	w, closer, err := output(logDir, cfg.Destination, keep)
	if err != nil {
		return closer, err
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		// source lines help to trace classifier and catalog problems
		AddSource: cfg.Level == "debug",
	}
	slog.SetDefault(slog.New(handler(w, cfg.Format, opts)))

	return closer, nil
}

func output(
	logDir, destination string,
	keep bool,
) (io.Writer, io.Closer, error) {
	switch destination {
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if keep {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flags, 0644)
		if err != nil {
			return nil, nopCloser{}, CreateLogFileError(path, err)
		}
		return f, f, nil
	default:
		return os.Stderr, nopCloser{}, nil
	}
}

// handler picks the slog handler. "tint" is rendered as plain text.
func handler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "text" || format == "tint" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
