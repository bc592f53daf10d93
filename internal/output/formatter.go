// Package output provides user-facing message formatting for the provision
// CLI tool.
//
// Every message is a single line with a classification prefix: [INFO] for
// progress on stdout, [WARN], [ERROR] and [FATAL] on stderr. Prefixes are
// colored when the destination is a terminal. Machine-readable output is
// available via JSON for the check command.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// stdout and stderr are replaceable for testing.
var (
	stdout = os.Stdout
	stderr = os.Stderr
)

// SetWriters redirects output streams (for testing).
func SetWriters(out, err *os.File) {
	stdout = out
	stderr = err
}

// JSON outputs data as indented JSON on stdout
func JSON(data interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success prints a success message to stdout
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(stdout, "[OK] "+format+"\n", args...)
}

// Info prints an informational progress message to stdout
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(stdout, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning message to stderr
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(stderr, "[WARN] "+format+"\n", args...)
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(stderr, "[ERROR] "+format+"\n", args...)
}

// Fatal prints a fatal error message to stderr
func Fatal(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(stderr, "[FATAL] "+format+"\n", args...)
}

// Print prints a plain message to stdout
func Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(stdout, format+"\n", args...)
}
