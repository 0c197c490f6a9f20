package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the structured logger written to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           lvl,
	})
	return logger, nil
}

// logOutput picks where logs go. The terminal frontend owns the screen, so it
// only logs to a file; the window frontend logs to stderr.
func logOutput(frontend, path string) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	if path == "" {
		if frontend == frontendTUI {
			return io.Discard, nop, nil
		}
		return os.Stderr, nop, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
