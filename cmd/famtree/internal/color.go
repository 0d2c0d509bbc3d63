// Package internal holds the small pieces of ambient CLI plumbing
// cmd/famtree's commands all share: colored status output, a progress
// bar, and config loading. None of it touches a Person Graph directly.
package internal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	quietMode   bool
	colorActive = true

	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.FgMagenta)
)

// InitColor turns fatih/color's output coloring on or off for the
// whole process, honoring --no-color and a config file's Output.Color.
func InitColor(enabled bool) {
	colorActive = enabled
	color.NoColor = !enabled
}

// SetQuietMode suppresses Print* output other than errors.
func SetQuietMode(q bool) { quietMode = q }

// IsQuietMode reports the current quiet setting.
func IsQuietMode() bool { return quietMode }

// PrintSuccess prints a green status line to stdout.
func PrintSuccess(format string, a ...interface{}) {
	if quietMode {
		return
	}
	successColor.Fprintf(os.Stdout, format, a...)
}

// PrintError prints a red status line to stderr. Errors are never
// suppressed by quiet mode.
func PrintError(format string, a ...interface{}) {
	errorColor.Fprintf(os.Stderr, format, a...)
}

// PrintWarning prints a yellow status line to stdout.
func PrintWarning(format string, a ...interface{}) {
	if quietMode {
		return
	}
	warningColor.Fprintf(os.Stdout, format, a...)
}

// PrintInfo prints a cyan status line to stdout.
func PrintInfo(format string, a ...interface{}) {
	if quietMode {
		return
	}
	infoColor.Fprintf(os.Stdout, format, a...)
}

// PrintHint prints a magenta status line to stdout.
func PrintHint(format string, a ...interface{}) {
	if quietMode {
		return
	}
	hintColor.Fprintf(os.Stdout, format, a...)
}

// helper so callers can build plain, uncolored strings for output that
// is going to a file rather than the terminal.
func Sprintf(format string, a ...interface{}) string {
	return fmt.Sprintf(format, a...)
}
