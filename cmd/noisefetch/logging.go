package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/noisefetch/internal/config"
)

// newLogger builds the logger described by cfg and the global flags.
// Flags win over the config file. The returned close function must be
// called once logging is done.
func newLogger(cfg config.LogConfig, w io.Writer) (*log.Logger, func(), error) {
	level := cfg.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	closeFn := func() {}
	path := cfg.File
	if flagLogFile != "" {
		path = flagLogFile
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "noisefetch",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
