// Package logger holds the process-wide diagnostic logger.
// User-facing output goes to stdout through internal/cli; this logger
// writes diagnostics to stderr.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.WarnLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// Init sets the log level by name. An unknown level falls back to warn.
// verbose forces debug regardless of level.
func Init(level string, verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	if level == "" {
		Log.SetLevel(logrus.WarnLevel)
		return
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'warn'", level)
		Log.SetLevel(logrus.WarnLevel)
		return
	}
	Log.SetLevel(lvl)
}

// SetOutput redirects log output, mostly for tests and the TUI, which
// owns the terminal while running.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// With returns an entry tagged with a component name.
func With(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
