package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// annotationInteractive marks commands that take over the terminal. Their
// logs are discarded unless --log-file is given.
const annotationInteractive = "interactive"

// newLogger builds the application logger from the global flags.
func newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}
