// Package logx is a thin leveled wrapper around the standard library's
// log.Logger. No example in the pack reaches for a structured logging
// library for a CLI-shaped tool, so this stays on the standard library
// rather than adopting one — see DESIGN.md.
package logx

import (
	"log"
	"os"
)

var (
	debugEnabled = os.Getenv("CODEHEM_DEBUG") != ""
	std          = log.New(os.Stderr, "", log.LstdFlags)
)

// Warn logs a warning-level message; always printed.
func Warn(format string, args ...any) {
	std.Printf("WARN  "+format, args...)
}

// Debug logs a debug-level message, only when CODEHEM_DEBUG is set.
func Debug(format string, args ...any) {
	if !debugEnabled {
		return
	}
	std.Printf("DEBUG "+format, args...)
}
