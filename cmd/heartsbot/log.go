package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is configured once in main based on --verbose and used by commands
// that run many decisions (match, compare) to trace per-hand progress
// without cluttering their primary stdout output.
var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

func setVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}
