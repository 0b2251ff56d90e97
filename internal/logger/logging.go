// Package logger configures charmbracelet/log for wsolve. Everything logs to
// stderr since stdout carries results and IPC frames.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup points the global logger at stderr. Debug mode lowers the level and
// adds timestamps, otherwise only warnings and errors are shown.
func Setup(debug bool) {
	SetupWriter(os.Stderr, debug)
}

// SetupWriter is Setup with a custom destination.
func SetupWriter(w io.Writer, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}

// New creates a prefixed logger that follows the global level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter creates a prefixed logger writing to w.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
