package rlog

import (
	"fmt"
	"strings"
)

// Level defines log severity. Levels are strictly ordered; a message is
// emitted only when its level is at or above the configured minimum.
type Level int

const (
	// LevelDebug enables debug logging.
	LevelDebug Level = iota
	// LevelInfo enables informational logging.
	LevelInfo
	// LevelWarn enables warning logging.
	LevelWarn
	// LevelError enables error logging.
	LevelError
	// LevelFatal enables fatal logging (exits after logging).
	LevelFatal
)

// ANSI escape sequences used for the line header.
const (
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// String returns the fixed-width three-letter tag used in rendered lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// color returns the ANSI sequence paired with this level.
func (l Level) color() string {
	switch l {
	case LevelDebug:
		return colorGreen
	case LevelInfo:
		return colorBlue
	case LevelWarn:
		return colorYellow
	default:
		// error and fatal
		return colorRed
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
