// Package logging gates the standard logger by level.
package logging

import (
	"log"
	"strings"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

var current = LevelInfo

// SetLevel changes the minimum level that reaches the standard logger.
func SetLevel(l Level) {
	current = l
}

// ParseLevel maps "debug", "info" and "warn" to a Level. Anything else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	}
	return LevelInfo
}

// Enabled reports whether messages at l reach the standard logger.
func Enabled(l Level) bool {
	return l >= current
}

// Debugf logs diagnostic detail, such as per-stroke lifecycle events.
func Debugf(format string, args ...any) {
	if Enabled(LevelDebug) {
		log.Printf(format, args...)
	}
}

// Infof logs user-visible state changes: undo, redo, clear, tool changes.
func Infof(format string, args ...any) {
	if Enabled(LevelInfo) {
		log.Printf(format, args...)
	}
}

// Warnf logs recoverable problems with a WARN prefix.
func Warnf(format string, args ...any) {
	if Enabled(LevelWarn) {
		log.Printf("WARN "+format, args...)
	}
}
