package logging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Level is a record severity. Records below a sink's level are suppressed.
type Level int

const (
	// DebugLevel is the most verbose severity.
	DebugLevel Level = 10
	// InfoLevel is for routine operational messages.
	InfoLevel Level = 20
	// WarningLevel is for unexpected but recoverable conditions.
	WarningLevel Level = 30
	// ErrorLevel is for failed operations.
	ErrorLevel Level = 40
	// CriticalLevel is for failures that leave the process unusable.
	CriticalLevel Level = 50
)

var levelNames = map[string]Level{
	"DEBUG":    DebugLevel,
	"INFO":     InfoLevel,
	"WARNING":  WarningLevel,
	"ERROR":    ErrorLevel,
	"CRITICAL": CriticalLevel,
}

// ParseLevel looks a level name up in the severity table.
// Names are matched exactly: "INFO" resolves, "info" and "WARN" do not.
func ParseLevel(name string) (Level, bool) {
	level, ok := levelNames[name]
	return level, ok
}

// Levels returns every level in ascending severity.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel}
}

// Valid reports whether l is one of the five table levels.
func (l Level) Valid() bool {
	switch l {
	case DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel:
		return true
	}
	return false
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ZapLevel converts l to the zapcore level used by the sinks.
// CRITICAL maps to DPanic, which only panics in development loggers.
func (l Level) ZapLevel() zapcore.Level {
	switch {
	case l <= DebugLevel:
		return zapcore.DebugLevel
	case l <= InfoLevel:
		return zapcore.InfoLevel
	case l <= WarningLevel:
		return zapcore.WarnLevel
	case l <= ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// levelFromZap is the inverse of ZapLevel; everything above error is CRITICAL.
func levelFromZap(l zapcore.Level) Level {
	switch {
	case l <= zapcore.DebugLevel:
		return DebugLevel
	case l == zapcore.InfoLevel:
		return InfoLevel
	case l == zapcore.WarnLevel:
		return WarningLevel
	case l == zapcore.ErrorLevel:
		return ErrorLevel
	default:
		return CriticalLevel
	}
}
