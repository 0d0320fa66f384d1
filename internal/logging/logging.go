// Package logging builds the structured logger shared by the game hosts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/splitroids/internal/config"
)

// New returns a logger writing to w at the given level name (debug, info,
// warn, error). An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "asteroids",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// FromEnv builds a logger from ASTEROIDS_LOG_LEVEL and ASTEROIDS_LOG_FILE.
// Without a log file, output goes to fallback. The returned close function
// releases the file, if one was opened.
func FromEnv(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if path := config.GetEnv(config.EnvLogFile, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger, err := New(w, config.GetEnv(config.EnvLogLevel, ""))
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
