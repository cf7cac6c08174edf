package logging

import (
	"fmt"
	"io"
	"os"
)

var (
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose turns debug output on or off. Called once the application
// configuration has been resolved from flags and environment.
func SetVerbose(v bool) {
	verbose = v
}

// DebugEnabled returns true if verbose mode is enabled
func DebugEnabled() bool {
	return verbose
}

// Debugf prints a formatted debug message only if verbose mode is enabled
func Debugf(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(out, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if verbose mode is enabled
func Debugln(args ...interface{}) {
	if verbose {
		fmt.Fprintln(out, args...)
	}
}
